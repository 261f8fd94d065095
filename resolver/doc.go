// Package resolver follows indirect object references.
//
// Content streams and resource dictionaries routinely point at objects
// stored elsewhere in the document. The document parser knows how to load
// an object by number; this package wraps that capability (a resolver.Func)
// with recursive resolution through dictionaries and arrays, cycle
// detection, and a recursion depth limit.
//
//	r := resolver.New(readerFn)
//	fontDict, err := r.ResolveDeep(resources.Get("Font"))
package resolver
