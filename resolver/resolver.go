package resolver

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
)

// Func resolves a single indirect reference to its object. The document
// parser supplies one; everything in this module that needs dereferencing
// accepts this type.
type Func func(core.IndirectRef) (core.Object, error)

// Resolve returns obj itself unless it is an indirect reference, in which
// case the reference is followed. A nil Func resolves references to Null.
func (f Func) Resolve(obj core.Object) (core.Object, error) {
	ref, ok := obj.(core.IndirectRef)
	if !ok {
		return obj, nil
	}
	if f == nil {
		return core.Null{}, nil
	}
	return f(ref)
}

// ObjectResolver resolves indirect references recursively through
// dictionaries and arrays, with cycle detection and a depth limit.
type ObjectResolver struct {
	fn       Func
	visited  map[int]bool
	maxDepth int
	depth    int
}

// Option configures the resolver
type Option func(*ObjectResolver)

// WithMaxDepth sets the maximum recursion depth (default: 100)
func WithMaxDepth(depth int) Option {
	return func(r *ObjectResolver) {
		r.maxDepth = depth
	}
}

// New creates a resolver around a reference-lookup function
func New(fn Func, opts ...Option) *ObjectResolver {
	r := &ObjectResolver{
		fn:       fn,
		visited:  make(map[int]bool),
		maxDepth: 100,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve follows obj if it is an indirect reference; nested references
// inside containers are left untouched.
func (r *ObjectResolver) Resolve(obj core.Object) (core.Object, error) {
	return r.resolve(obj, false)
}

// ResolveDeep recursively resolves every indirect reference inside
// dictionaries, arrays, and stream dictionaries.
func (r *ObjectResolver) ResolveDeep(obj core.Object) (core.Object, error) {
	return r.resolve(obj, true)
}

func (r *ObjectResolver) resolve(obj core.Object, deep bool) (core.Object, error) {
	if r.depth == 0 {
		// fresh visited set per top-level resolution
		r.visited = make(map[int]bool)
	}
	if r.depth >= r.maxDepth {
		return nil, fmt.Errorf("maximum recursion depth (%d) exceeded", r.maxDepth)
	}

	switch v := obj.(type) {
	case core.IndirectRef:
		if r.visited[v.Number] {
			return nil, fmt.Errorf("circular reference detected for object %d", v.Number)
		}
		r.visited[v.Number] = true
		defer delete(r.visited, v.Number)

		if r.fn == nil {
			return core.Null{}, nil
		}
		resolved, err := r.fn(v)
		if err != nil {
			return nil, fmt.Errorf("resolve %d %d R: %w", v.Number, v.Generation, err)
		}
		if deep {
			r.depth++
			resolved, err = r.resolve(resolved, deep)
			r.depth--
			if err != nil {
				return nil, err
			}
		}
		return resolved, nil

	case core.Dict:
		if !deep {
			return v, nil
		}
		resolved := make(core.Dict, len(v))
		for key, value := range v {
			r.depth++
			rv, err := r.resolve(value, deep)
			r.depth--
			if err != nil {
				return nil, fmt.Errorf("resolve dict key %s: %w", key, err)
			}
			resolved[key] = rv
		}
		return resolved, nil

	case core.Array:
		if !deep {
			return v, nil
		}
		resolved := make(core.Array, len(v))
		for i, elem := range v {
			r.depth++
			re, err := r.resolve(elem, deep)
			r.depth--
			if err != nil {
				return nil, fmt.Errorf("resolve array element %d: %w", i, err)
			}
			resolved[i] = re
		}
		return resolved, nil

	case *core.Stream:
		if !deep {
			return v, nil
		}
		r.depth++
		rd, err := r.resolve(v.Dict, deep)
		r.depth--
		if err != nil {
			return nil, fmt.Errorf("resolve stream dict: %w", err)
		}
		return core.NewStream(rd.(core.Dict), v.Data), nil

	default:
		return obj, nil
	}
}
