package interpreter

import (
	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/font"
	"github.com/tsawler/pdfstream/resolver"
)

// Resources is the name-keyed resource scope of one (sub-)stream: the
// fonts, XObjects, and extended graphics states its operators can refer
// to. Each ProcessSubStream call owns the scope it pushes; the engine
// releases it on pop.
type Resources struct {
	fonts      map[string]font.Font
	xobjects   core.Dict
	extGStates core.Dict
	resolve    resolver.Func
}

// NewResources builds a resource scope from a PDF /Resources dictionary.
// Fonts are loaded eagerly; XObjects and ExtGStates stay as dictionaries
// and are resolved on lookup. resolve may be nil for fully direct
// dictionaries.
func NewResources(dict core.Dict, resolve resolver.Func) *Resources {
	r := &Resources{resolve: resolve}
	if dict == nil {
		return r
	}

	if fontDict, ok := resolveToDict(dict.Get("Font"), resolve); ok {
		r.fonts = font.LoadAll(fontDict, resolve)
	}
	if xobjDict, ok := resolveToDict(dict.Get("XObject"), resolve); ok {
		r.xobjects = xobjDict
	}
	if gsDict, ok := resolveToDict(dict.Get("ExtGState"), resolve); ok {
		r.extGStates = gsDict
	}
	return r
}

// resolveToDict dereferences obj if needed and asserts a dictionary
func resolveToDict(obj core.Object, resolve resolver.Func) (core.Dict, bool) {
	resolved, err := resolve.Resolve(obj)
	if err != nil {
		return nil, false
	}
	dict, ok := resolved.(core.Dict)
	return dict, ok
}

// Fonts returns the font map. Never nil.
func (r *Resources) Fonts() map[string]font.Font {
	if r.fonts == nil {
		r.fonts = make(map[string]font.Font)
	}
	return r.fonts
}

// SetFonts replaces the font map
func (r *Resources) SetFonts(fonts map[string]font.Font) {
	r.fonts = fonts
}

// Font looks up a font by resource name
func (r *Resources) Font(name string) (font.Font, bool) {
	f, ok := r.fonts[name]
	return f, ok
}

// XObjects returns the XObject dictionary. Never nil.
func (r *Resources) XObjects() core.Dict {
	if r.xobjects == nil {
		r.xobjects = make(core.Dict)
	}
	return r.xobjects
}

// XObject looks up an XObject stream by resource name, following an
// indirect reference if necessary
func (r *Resources) XObject(name string) (*core.Stream, bool) {
	obj := r.xobjects.Get(name)
	if obj == nil {
		return nil, false
	}
	resolved, err := r.resolve.Resolve(obj)
	if err != nil {
		return nil, false
	}
	stream, ok := resolved.(*core.Stream)
	return stream, ok
}

// ExtGStates returns the extended graphics state dictionary. Never nil.
func (r *Resources) ExtGStates() core.Dict {
	if r.extGStates == nil {
		r.extGStates = make(core.Dict)
	}
	return r.extGStates
}

// SetExtGStates replaces the extended graphics state dictionary
func (r *Resources) SetExtGStates(dict core.Dict) {
	r.extGStates = dict
}

// ExtGState looks up an extended graphics state dictionary by name
func (r *Resources) ExtGState(name string) (core.Dict, bool) {
	return resolveToDict(r.extGStates.Get(name), r.resolve)
}

// Resolver returns the scope's reference resolver
func (r *Resources) Resolver() resolver.Func {
	return r.resolve
}

// release drops the scope's contents when it is popped
func (r *Resources) release() {
	r.fonts = nil
	r.xobjects = nil
	r.extGStates = nil
}
