package domain

import (
	"fmt"
	"strings"
)

// Layer is one of the four concentric responsibility tiers, totally
// ordered from innermost (Domain) to outermost (Presentation).
type Layer int

const (
	// LayerDomain is the innermost tier: entities and business rules.
	LayerDomain Layer = iota

	// LayerApplication holds use cases orchestrating domain entities.
	LayerApplication

	// LayerInfrastructure holds persistence, transport and other
	// technical detail.
	LayerInfrastructure

	// LayerPresentation is the outermost tier: controllers, views,
	// delivery mechanisms.
	LayerPresentation
)

// layerNames maps layers to their canonical lowercase names.
var layerNames = map[Layer]string{
	LayerDomain:         "domain",
	LayerApplication:    "application",
	LayerInfrastructure: "infrastructure",
	LayerPresentation:   "presentation",
}

// Layers returns all layers in rank order, innermost first.
func Layers() []Layer {
	return []Layer{LayerDomain, LayerApplication, LayerInfrastructure, LayerPresentation}
}

// Rank returns the layer's position in the ordering. Domain is 0,
// Presentation is 3. A module may only reference modules whose layer
// rank is less than or equal to its own.
func (l Layer) Rank() int {
	return int(l)
}

// String returns the canonical lowercase layer name.
func (l Layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

// Valid reports whether l is one of the four known layers.
func (l Layer) Valid() bool {
	_, ok := layerNames[l]
	return ok
}

// MarshalJSON encodes the layer as its canonical name so reports are
// readable without the rank table.
func (l Layer) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: rank %d", ErrUnknownLayer, int(l))
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes a layer from its canonical name.
func (l *Layer) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	layer, err := ParseLayer(name)
	if err != nil {
		return err
	}
	*l = layer
	return nil
}

// ParseLayer resolves a layer from its canonical name.
// Returns ErrUnknownLayer for anything else.
func ParseLayer(name string) (Layer, error) {
	for layer, n := range layerNames {
		if n == name {
			return layer, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// MayReference reports whether a module in layer l is allowed to
// reference a module in layer target. References to the same or a
// strictly inner layer are allowed; references outward are not.
func (l Layer) MayReference(target Layer) bool {
	return target.Rank() <= l.Rank()
}
