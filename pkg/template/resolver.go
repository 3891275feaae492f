package template

import (
	"errors"
	"fmt"
)

// Resolver reads, substitutes, and normalises templates from a Store.
type Resolver struct {
	store Store
}

// NewResolver constructs a Resolver over store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Raw reads key and substitutes values without normalising. It serves the
// descriptors that are copied verbatim.
func (r *Resolver) Raw(key string, values Values) (string, error) {
	if r == nil || r.store == nil {
		return "", errors.New("template: resolver store is nil")
	}
	tpl, err := r.store.Read(key)
	if err != nil {
		return "", err
	}
	return Substitute(tpl, values), nil
}

// Render reads key, substitutes values, and normalises the result.
func (r *Resolver) Render(key string, values Values, opts NormalizeOptions) (string, error) {
	substituted, err := r.Raw(key, values)
	if err != nil {
		return "", err
	}
	out, err := Normalize(substituted, opts)
	if err != nil {
		var normErr *NormalizationError
		if errors.As(err, &normErr) {
			normErr.Artifact = key
			return "", normErr
		}
		return "", fmt.Errorf("template: render %s: %w", key, err)
	}
	return out, nil
}
