package assets

import "errors"

// Resolver tries a custom directory first and falls back to the built-in
// styles when the style is not found there.
type Resolver struct {
	custom   StyleLoader // nil without a custom directory
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty customDir uses built-in styles only.
func NewResolver(customDir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle loads a style, custom directory first.
// Only ErrStyleNotFound falls back; validation and I/O errors are returned.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// BuiltinNames lists the built-in styles.
func (r *Resolver) BuiltinNames() []string {
	return r.embedded.Names()
}

// Compile-time interface check.
var _ StyleLoader = (*Resolver)(nil)
