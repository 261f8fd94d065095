package resolver

import (
	"fmt"
	"testing"

	"github.com/tsawler/pdfstream/core"
)

// tableFunc builds a resolver.Func from an object-number table
func tableFunc(objects map[int]core.Object) Func {
	return func(ref core.IndirectRef) (core.Object, error) {
		obj, ok := objects[ref.Number]
		if !ok {
			return nil, fmt.Errorf("object %d not found", ref.Number)
		}
		return obj, nil
	}
}

// TestResolveDirect tests that direct objects pass through unchanged
func TestResolveDirect(t *testing.T) {
	r := New(tableFunc(nil))

	obj, err := r.Resolve(core.Int(42))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if obj != core.Int(42) {
		t.Errorf("expected 42, got %v", obj)
	}
}

// TestResolveReference tests single reference resolution
func TestResolveReference(t *testing.T) {
	objects := map[int]core.Object{
		5: core.Name("Helvetica"),
	}
	r := New(tableFunc(objects))

	obj, err := r.Resolve(core.IndirectRef{Number: 5})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if obj != core.Name("Helvetica") {
		t.Errorf("expected /Helvetica, got %v", obj)
	}
}

// TestResolveDeep tests recursion through containers
func TestResolveDeep(t *testing.T) {
	objects := map[int]core.Object{
		1: core.Dict{"Inner": core.IndirectRef{Number: 2}},
		2: core.Array{core.IndirectRef{Number: 3}, core.Int(7)},
		3: core.Real(1.5),
	}
	r := New(tableFunc(objects))

	obj, err := r.ResolveDeep(core.IndirectRef{Number: 1})
	if err != nil {
		t.Fatalf("ResolveDeep failed: %v", err)
	}

	dict, ok := obj.(core.Dict)
	if !ok {
		t.Fatalf("expected Dict, got %T", obj)
	}
	arr, ok := dict.Get("Inner").(core.Array)
	if !ok {
		t.Fatalf("expected Array, got %T", dict.Get("Inner"))
	}
	if arr.Get(0) != core.Real(1.5) || arr.Get(1) != core.Int(7) {
		t.Errorf("unexpected array contents: %v", arr)
	}
}

// TestResolveCycle tests circular reference detection
func TestResolveCycle(t *testing.T) {
	objects := map[int]core.Object{
		1: core.Dict{"Next": core.IndirectRef{Number: 2}},
		2: core.Dict{"Next": core.IndirectRef{Number: 1}},
	}
	r := New(tableFunc(objects))

	if _, err := r.ResolveDeep(core.IndirectRef{Number: 1}); err == nil {
		t.Error("expected error for circular reference")
	}
}

// TestResolveMaxDepth tests the depth limit
func TestResolveMaxDepth(t *testing.T) {
	// chain deep enough to exceed a small limit
	objects := make(map[int]core.Object)
	for i := 1; i < 10; i++ {
		objects[i] = core.Array{core.IndirectRef{Number: i + 1}}
	}
	objects[10] = core.Int(1)

	r := New(tableFunc(objects), WithMaxDepth(3))
	if _, err := r.ResolveDeep(core.IndirectRef{Number: 1}); err == nil {
		t.Error("expected depth limit error")
	}
}

// TestFuncNilResolvesToNull tests the nil Func fallback
func TestFuncNilResolvesToNull(t *testing.T) {
	var f Func

	obj, err := f.Resolve(core.IndirectRef{Number: 9})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if _, ok := obj.(core.Null); !ok {
		t.Errorf("expected Null, got %T", obj)
	}
}
