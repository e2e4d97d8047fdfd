package rpc

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Wire is a version-specific reply record that converts into the domain model M.
type Wire[M any] interface {
	IntoModel() (M, error)
}

// Converter decodes a raw result and converts it into its domain model.
type Converter func(raw json.RawMessage) (any, error)

// Registry maps the methods of one server version to their converters.
type Registry struct {
	version int
	methods map[string]Converter
}

func NewRegistry(version int) *Registry {
	return &Registry{
		version: version,
		methods: make(map[string]Converter),
	}
}

// Register binds method to the wire record W of this version. A later call for
// the same method replaces the earlier binding, which is how a newer version
// overrides a changed reply.
func Register[M any, W Wire[M]](r *Registry, method string) {
	r.methods[method] = func(raw json.RawMessage) (any, error) {
		var w W
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, method, err)
		}
		m, err := w.IntoModel()
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Extend returns a registry for version holding every binding of r.
func (r *Registry) Extend(version int) *Registry {
	next := NewRegistry(version)
	for name, conv := range r.methods {
		next.methods[name] = conv
	}
	return next
}

func (r *Registry) Version() int {
	return r.version
}

func (r *Registry) Get(method string) (Converter, bool) {
	conv, exists := r.methods[method]
	return conv, exists
}

// Convert runs the converter registered for method on raw.
func (r *Registry) Convert(method string, raw json.RawMessage) (any, error) {
	conv, exists := r.Get(method)
	if !exists {
		return nil, fmt.Errorf("%w: %s (v%d)", ErrUnknownMethod, method, r.version)
	}
	return conv(raw)
}

// List returns the registered method names in sorted order.
func (r *Registry) List() []string {
	methods := make([]string, 0, len(r.methods))
	for name := range r.methods {
		methods = append(methods, name)
	}
	sort.Strings(methods)
	return methods
}
