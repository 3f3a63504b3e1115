package template

import (
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	ai "github.com/spetersoncode/nanobanana"
)

// Factory creates a template instance.
type Factory func() PromptTemplate

// Registry maps template keys to factories. The zero value is an empty
// registry ready for use. Registries are independent values; there is no
// process-wide registry.
type Registry struct {
	mu        sync.RWMutex
	factories *orderedmap.OrderedMap[string, Factory]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: orderedmap.New[string, Factory]()}
}

// Register associates key with factory. Registering an existing key
// replaces its factory but keeps the key's original position.
// Register panics if factory is nil.
func (r *Registry) Register(key string, factory Factory) {
	if factory == nil {
		panic("template: Register factory is nil for " + key)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = orderedmap.New[string, Factory]()
	}
	r.factories.Set(key, factory)
}

func (r *Registry) lookup(key string) (Factory, bool) {
	if r.factories == nil {
		return nil, false
	}
	return r.factories.Get(key)
}

// Create instantiates the template registered under key.
// It returns *ai.UnknownTemplateError when key is not registered.
func (r *Registry) Create(key string) (PromptTemplate, error) {
	r.mu.RLock()
	factory, ok := r.lookup(key)
	r.mu.RUnlock()
	if !ok {
		return nil, &ai.UnknownTemplateError{Key: key, Available: r.Keys()}
	}
	return factory(), nil
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, r.factories.Len())
	for pair := r.factories.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lookup(key)
	return ok
}

// Clear removes all registrations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = orderedmap.New[string, Factory]()
}

// NewGenerator creates a generator for the template registered under key.
func (r *Registry) NewGenerator(key string) (*Generator, error) {
	t, err := r.Create(key)
	if err != nil {
		return nil, err
	}
	return NewGenerator(t), nil
}
