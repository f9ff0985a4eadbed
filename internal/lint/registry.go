package lint

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownRule = errors.New("unknown rule")

// Registry maps rule names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the name of the rule it builds.
func (r *Registry) Register(f Factory) error {
	name := f().Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("rule %q registered twice", name)
	}
	r.factories[name] = f
	return nil
}

func (r *Registry) MustRegister(f Factory) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// New builds a rule by name.
func (r *Registry) New(name string) (Rule, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return f(), nil
}

// Names returns registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Meta returns the metadata of a registered rule.
func (r *Registry) Meta(name string) (Meta, error) {
	rule, err := r.New(name)
	if err != nil {
		return Meta{}, err
	}
	return rule.Meta(), nil
}
