package domain

import (
	"fmt"
	"strings"
)

// Convention maps directory (or package segment) names to layers.
// Scanners consult it to assign each module a layer from its location.
type Convention struct {
	dirs map[string]Layer
}

// DefaultConvention returns the standard four-directory convention:
// domain/, application/, infrastructure/, presentation/.
func DefaultConvention() *Convention {
	c := &Convention{dirs: make(map[string]Layer)}
	for _, l := range Layers() {
		c.dirs[l.String()] = l
	}
	return c
}

// NewConvention builds a convention from directory aliases per layer.
// Each alias maps to its layer in addition to the canonical names.
// An alias claimed by two layers is rejected.
func NewConvention(aliases map[Layer][]string) (*Convention, error) {
	c := DefaultConvention()
	for layer, names := range aliases {
		if !layer.Valid() {
			return nil, fmt.Errorf("%w: rank %d", ErrUnknownLayer, int(layer))
		}
		for _, name := range names {
			if name == "" {
				return nil, fmt.Errorf("%w: empty layer alias", ErrInvalidInput)
			}
			if existing, ok := c.dirs[name]; ok && existing != layer {
				return nil, fmt.Errorf("%w: alias %q maps to both %s and %s",
					ErrInvalidInput, name, existing, layer)
			}
			c.dirs[name] = layer
		}
	}
	return c, nil
}

// LayerForSegment resolves a single directory or package segment.
func (c *Convention) LayerForSegment(segment string) (Layer, bool) {
	l, ok := c.dirs[segment]
	return l, ok
}

// LayerForPath resolves the layer for a slash-separated path relative
// to the scan root. The first segment matching a known layer directory
// wins, so nested trees like src/main/java/com/example/domain/User
// resolve correctly. Returns false if no segment matches; callers
// decide whether that means "skip" or ErrUnknownLayer.
func (c *Convention) LayerForPath(rel string) (Layer, bool) {
	for _, segment := range strings.Split(rel, "/") {
		if l, ok := c.dirs[segment]; ok {
			return l, true
		}
	}
	return 0, false
}
