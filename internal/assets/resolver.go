package assets

import (
	"errors"
	"sort"
)

// Resolver loads styles from a custom directory first and falls back to
// the built-in styles when a name is not found there.
type Resolver struct {
	custom   StyleLoader // nil without a custom directory
	embedded StyleLoader
}

// NewResolver creates a Resolver. An empty dir uses built-in styles only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if dir != "" {
		custom, err := NewDirLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

// LoadStyle loads name from the custom directory, then from the built-ins.
// Only a not-found error falls back; validation and I/O errors are returned.
func (r *Resolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// Styles lists the names available from both loaders, without duplicates.
func (r *Resolver) Styles() []string {
	names := r.embedded.Styles()
	if r.custom == nil {
		return names
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range r.custom.Styles() {
		if !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	sort.Strings(names)
	return names
}

var _ StyleLoader = (*Resolver)(nil)
