package font

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
)

// Load builds a Font from a PDF font dictionary, dispatching on /Subtype.
// resolve dereferences indirect objects inside the dictionary and may be
// nil when the dictionary is already fully resolved.
func Load(name string, dict core.Dict, resolve func(core.IndirectRef) (core.Object, error)) (Font, error) {
	subtype, ok := dict.GetName("Subtype")
	if !ok {
		return nil, fmt.Errorf("font %s missing Subtype", name)
	}

	switch subtype {
	case "Type1", "MMType1", "TrueType":
		return NewSimpleFont(name, dict, resolveFunc(resolve))
	case "Type0":
		return NewCompositeFont(name, dict, resolveFunc(resolve))
	case "Type3":
		return NewType3Font(name, dict, resolveFunc(resolve))
	default:
		return nil, fmt.Errorf("unsupported font subtype /%s", subtype)
	}
}

// LoadAll builds every font in a resource /Font dictionary. Fonts that
// fail to parse are skipped; text shown with them falls back to the
// engine's unknown-glyph handling.
func LoadAll(fonts core.Dict, resolve func(core.IndirectRef) (core.Object, error)) map[string]Font {
	loaded := make(map[string]Font, len(fonts))
	for name, obj := range fonts {
		dict, ok := resolveDict(obj, resolveFunc(resolve))
		if !ok {
			continue
		}
		f, err := Load(name, dict, resolve)
		if err != nil {
			continue
		}
		loaded[name] = f
	}
	return loaded
}
