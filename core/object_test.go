package core

import "testing"

// TestObjectTypes tests Type() tagging across the object kinds
func TestObjectTypes(t *testing.T) {
	tests := []struct {
		name     string
		obj      Object
		expected ObjectType
	}{
		{"null", Null{}, ObjNull},
		{"bool", Bool(true), ObjBool},
		{"int", Int(5), ObjInt},
		{"real", Real(1.5), ObjReal},
		{"string", String("s"), ObjString},
		{"name", Name("N"), ObjName},
		{"array", Array{}, ObjArray},
		{"dict", Dict{}, ObjDict},
		{"stream", &Stream{}, ObjStream},
		{"ref", IndirectRef{Number: 1}, ObjIndirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.obj.Type(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestStringRepresentations tests the PDF-style String output
func TestStringRepresentations(t *testing.T) {
	if got := Name("F1").String(); got != "/F1" {
		t.Errorf("expected /F1, got %s", got)
	}
	if got := (IndirectRef{Number: 7, Generation: 0}).String(); got != "7 0 R" {
		t.Errorf("expected 7 0 R, got %s", got)
	}
	if got := (Array{Int(1), Name("X")}).String(); got != "[1 /X]" {
		t.Errorf("expected [1 /X], got %s", got)
	}
}

// TestDictAccessors tests typed lookups
func TestDictAccessors(t *testing.T) {
	d := Dict{
		"Name":  Name("F1"),
		"Count": Int(3),
		"Scale": Real(0.5),
		"Kids":  Array{Int(1)},
		"Sub":   Dict{"X": Int(1)},
	}

	if name, ok := d.GetName("Name"); !ok || name != "F1" {
		t.Errorf("GetName failed: %v %v", name, ok)
	}
	if i, ok := d.GetInt("Count"); !ok || i != 3 {
		t.Errorf("GetInt failed: %v %v", i, ok)
	}
	if f, ok := d.GetFloat("Scale"); !ok || f != 0.5 {
		t.Errorf("GetFloat failed: %v %v", f, ok)
	}
	if f, ok := d.GetFloat("Count"); !ok || f != 3 {
		t.Errorf("GetFloat should read ints: %v %v", f, ok)
	}
	if _, ok := d.GetArray("Kids"); !ok {
		t.Error("GetArray failed")
	}
	if _, ok := d.GetDict("Sub"); !ok {
		t.Error("GetDict failed")
	}
	if _, ok := d.GetName("Missing"); ok {
		t.Error("expected missing key to fail")
	}
	if !d.Has("Name") || d.Has("Missing") {
		t.Error("Has misreported")
	}
}

// TestArrayBounds tests out-of-range access
func TestArrayBounds(t *testing.T) {
	a := Array{Int(1)}

	if a.Get(-1) != nil || a.Get(1) != nil {
		t.Error("expected nil for out-of-range access")
	}
	if v, ok := a.GetFloat(0); !ok || v != 1 {
		t.Errorf("GetFloat failed: %v %v", v, ok)
	}
}

// TestAsFloat tests numeric coercion
func TestAsFloat(t *testing.T) {
	if v, ok := AsFloat(Int(2)); !ok || v != 2 {
		t.Error("AsFloat(Int) failed")
	}
	if v, ok := AsFloat(Real(2.5)); !ok || v != 2.5 {
		t.Error("AsFloat(Real) failed")
	}
	if _, ok := AsFloat(Name("x")); ok {
		t.Error("AsFloat should reject names")
	}
	if _, ok := AsFloat(nil); ok {
		t.Error("AsFloat should reject nil")
	}
}
