package driven

// ScannerRegistry resolves scanners by language.
// It maintains the set of registered scanners and dispatches based on
// an explicit language choice or tree detection.
type ScannerRegistry interface {
	// Register adds a scanner to the registry.
	Register(scanner Scanner)

	// Get returns the scanner for a language identifier.
	// Returns domain.ErrUnsupportedLanguage for unknown languages.
	Get(language string) (Scanner, error)

	// Detect returns the first registered scanner recognising the
	// tree at root, or domain.ErrUnsupportedLanguage if none does.
	Detect(root string) (Scanner, error)

	// Languages lists registered language identifiers, sorted.
	Languages() []string
}
