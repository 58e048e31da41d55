package collect

import (
	"fmt"
	"sort"
	"sync"
)

// HandlerFunc implements a named operation over positional arguments.
type HandlerFunc func(args ...any) (any, error)

// Validator inspects the raw arguments of a call before its handler runs.
type Validator func(args ...any) bool

// Handler is a named operation together with an optional argument check.
// When Validate rejects a call, the registry returns Default without running
// Fn.
type Handler struct {
	Name     string
	Fn       HandlerFunc
	Validate Validator
	Default  any
}

// Registry is a goroutine-safe store of named handlers.
//
//	r := collect.Default()
//	out, _ := r.Call("range", 1, 3) // []any{1.0, 2.0, 3.0}
//	out, _ = r.Call("unique", "x")  // nil: the validator wants a sequence
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds h, replacing any handler with the same name.
func (r *Registry) Register(h Handler) error {
	if h.Name == "" {
		return ErrEmptyHandlerName
	}
	if h.Fn == nil {
		return fmt.Errorf("%w: %q", ErrNilHandler, h.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Name] = h
	return nil
}

// Has reports whether a handler is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Names returns the registered handler names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the handler registered under name with args.
// Returns (nil, ErrHandlerNotFound) if no handler is registered under name.
func (r *Registry) Call(name string, args ...any) (any, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrHandlerNotFound, name)
	}
	if h.Validate != nil && !h.Validate(args...) {
		return h.Default, nil
	}
	return h.Fn(args...)
}
