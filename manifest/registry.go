package manifest

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/comalice/actionx"
)

var (
	ErrUnknownTransform = errors.New("unknown transform")
	ErrDuplicate        = errors.New("transform already registered")
)

// Registry resolves the transform names used in a manifest.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]actionx.PayloadFunc
}

// NewRegistry returns a registry holding the builtin transforms:
//
//	identity  first argument unchanged
//	args      all arguments as a []any
//	none      always nil, so the action has no payload
func NewRegistry() *Registry {
	return &Registry{
		transforms: map[string]actionx.PayloadFunc{
			"identity": actionx.Identity,
			"args": func(args ...any) any {
				return append([]any(nil), args...)
			},
			"none": func(...any) any { return nil },
		},
	}
}

// Register adds a named transform.
func (r *Registry) Register(name string, fn actionx.PayloadFunc) error {
	if name == "" {
		return errors.New("transform name is required")
	}
	if fn == nil {
		return fmt.Errorf("transform %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transforms[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.transforms[name] = fn
	return nil
}

// Lookup returns the transform registered under name.
func (r *Registry) Lookup(name string) (actionx.PayloadFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.transforms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return fn, nil
}

// Names lists registered transform names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
