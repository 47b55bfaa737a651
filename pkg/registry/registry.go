// Package registry maps wire model names to constructors so that tools can
// decode and validate documents by name.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/amirasaad/dodopayments-go/pkg/envelope"
)

var (
	ErrNotFound          = errors.New("model not registered")
	ErrAlreadyRegistered = errors.New("model already registered")
)

// Model is implemented by every envelope-backed resource model.
type Model interface {
	json.Marshaler
	json.Unmarshaler
	Validate() error
	Envelope() *envelope.Envelope
	Schema() *envelope.Schema
}

// Factory returns a new, empty model.
type Factory func() Model

// Registry is a thread-safe set of named model factories.
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// New creates a new empty registry
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name. Names are unique.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("register %q: name and factory are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// New returns an empty model for name.
func (r *Registry) New(name string) (Model, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return factory(), nil
}

// IsRegistered checks if a model name is registered
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[name]
	return exists
}

// Names returns the registered names in sorted order.
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

// Unregister removes a model from the registry
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		delete(r.factories, name)
		return true
	}
	return false
}

// Count returns the total number of registered models
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Decode creates the named model and unmarshals data into it. The result is
// not validated.
func (r *Registry) Decode(name string, data []byte) (Model, error) {
	m, err := r.New(name)
	if err != nil {
		return nil, err
	}
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return m, nil
}
