package interceptor

import "github.com/smykla-skalski/hookgate/pkg/hook"

// Predicate determines if an interceptor applies to a request.
type Predicate func(*hook.Request) bool

// Registration pairs an interceptor with its predicate.
type Registration struct {
	Interceptor Interceptor
	Predicate   Predicate
}

// Registry manages interceptor registrations. Registration order is
// evaluation order, which is how rule precedence is expressed.
type Registry struct {
	registrations []Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: make([]Registration, 0),
	}
}

// Register appends an interceptor with its predicate.
func (r *Registry) Register(ic Interceptor, predicate Predicate) {
	r.registrations = append(r.registrations, Registration{
		Interceptor: ic,
		Predicate:   predicate,
	})
}

// Find returns the interceptors whose predicates match the request, in
// registration order.
func (r *Registry) Find(req *hook.Request) []Interceptor {
	matched := make([]Interceptor, 0)

	for _, reg := range r.registrations {
		if reg.Predicate(req) {
			matched = append(matched, reg.Interceptor)
		}
	}

	return matched
}

// Count returns the number of registered interceptors.
func (r *Registry) Count() int {
	return len(r.registrations)
}

// ForTool builds a predicate matching a single tool name exactly.
func ForTool(name string) Predicate {
	return func(req *hook.Request) bool {
		return req.IsTool(name)
	}
}
