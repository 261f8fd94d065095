package interpreter

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
)

// Handler executes one content stream operator. Handlers read their
// operands and call back into the engine to mutate state or show text.
type Handler interface {
	Process(e *Engine, op string, operands []core.Object) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(e *Engine, op string, operands []core.Object) error

// Process calls f
func (f HandlerFunc) Process(e *Engine, op string, operands []core.Object) error {
	return f(e, op, operands)
}

// Registry maps operator mnemonics to handlers. Operators can also be
// disabled, which makes the engine skip them silently instead of
// reporting them as unsupported.
type Registry struct {
	handlers map[string]Handler
	disabled map[string]bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		disabled: make(map[string]bool),
	}
}

// Register binds a handler to an operator mnemonic
func (r *Registry) Register(op string, h Handler) {
	r.handlers[op] = h
	delete(r.disabled, op)
}

// Disable records an operator as silently ignored
func (r *Registry) Disable(op string) {
	delete(r.handlers, op)
	r.disabled[op] = true
}

// Handler returns the handler bound to an operator
func (r *Registry) Handler(op string) (Handler, bool) {
	h, ok := r.handlers[op]
	return h, ok
}

// Disabled reports whether an operator is silently ignored
func (r *Registry) Disabled(op string) bool {
	return r.disabled[op]
}

// Config maps operator mnemonics to handler identifiers. An empty
// identifier disables the operator. Identifiers resolve against the
// compile-time handler table; an unknown identifier is a construction
// error.
type Config map[string]string

// NewRegistryFromConfig resolves a configuration into a registry
func NewRegistryFromConfig(cfg Config) (*Registry, error) {
	r := NewRegistry()
	for op, id := range cfg {
		if id == "" {
			r.Disable(op)
			continue
		}
		h, ok := handlerTable[id]
		if !ok {
			return nil, fmt.Errorf("operator %q: unknown handler identifier %q", op, id)
		}
		r.Register(op, h)
	}
	return r, nil
}

// handlerTable is the compile-time mapping from handler identifiers to
// handler implementations, the static replacement for looking classes up
// by name at runtime.
var handlerTable = map[string]Handler{
	"GSave":              HandlerFunc(opSaveGraphicsState),
	"GRestore":           HandlerFunc(opRestoreGraphicsState),
	"Concatenate":        HandlerFunc(opConcatenate),
	"SetLineWidth":       HandlerFunc(opSetLineWidth),
	"SetLineCap":         HandlerFunc(opSetLineCap),
	"SetLineJoin":        HandlerFunc(opSetLineJoin),
	"SetMiterLimit":      HandlerFunc(opSetMiterLimit),
	"SetLineDash":        HandlerFunc(opSetLineDash),
	"SetRenderingIntent": HandlerFunc(opSetRenderingIntent),
	"SetFlatness":        HandlerFunc(opSetFlatness),
	"SetExtGState":       HandlerFunc(opSetExtGState),

	"BeginText":            HandlerFunc(opBeginText),
	"EndText":              HandlerFunc(opEndText),
	"SetFont":              HandlerFunc(opSetFont),
	"SetCharSpacing":       HandlerFunc(opSetCharSpacing),
	"SetWordSpacing":       HandlerFunc(opSetWordSpacing),
	"SetHorizontalScaling": HandlerFunc(opSetHorizontalScaling),
	"SetLeading":           HandlerFunc(opSetLeading),
	"SetRenderingMode":     HandlerFunc(opSetRenderingMode),
	"SetRise":              HandlerFunc(opSetRise),
	"SetTextMatrix":        HandlerFunc(opSetTextMatrix),
	"MoveText":             HandlerFunc(opMoveText),
	"MoveTextSetLeading":   HandlerFunc(opMoveTextSetLeading),
	"NextLine":             HandlerFunc(opNextLine),
	"ShowText":             HandlerFunc(opShowText),
	"ShowTextLine":         HandlerFunc(opShowTextLine),
	"ShowTextLineAndSpace": HandlerFunc(opShowTextLineAndSpace),
	"ShowTextAdjusted":     HandlerFunc(opShowTextAdjusted),

	"Invoke": HandlerFunc(opInvoke),

	"MoveTo":        HandlerFunc(opMoveTo),
	"LineTo":        HandlerFunc(opLineTo),
	"CurveTo":       HandlerFunc(opCurveTo),
	"CurveToV":      HandlerFunc(opCurveToV),
	"CurveToY":      HandlerFunc(opCurveToY),
	"ClosePath":     HandlerFunc(opClosePath),
	"AppendRect":    HandlerFunc(opAppendRect),
	"PaintPath":     HandlerFunc(opPaintPath),
	"EndPath":       HandlerFunc(opEndPath),
	"ClipPath":      HandlerFunc(opClipPath),
	"SetStrokeGray": HandlerFunc(opSetStrokeGray),
	"SetFillGray":   HandlerFunc(opSetFillGray),
	"SetStrokeRGB":  HandlerFunc(opSetStrokeRGB),
	"SetFillRGB":    HandlerFunc(opSetFillRGB),
	"SetStrokeCMYK": HandlerFunc(opSetStrokeCMYK),
	"SetFillCMYK":   HandlerFunc(opSetFillCMYK),
}

// DefaultConfig returns the standard operator binding: the text, graphics
// state, path, color, and XObject operators bound to their built-in
// handlers, and the marked-content and compatibility operators disabled.
func DefaultConfig() Config {
	return Config{
		"q":  "GSave",
		"Q":  "GRestore",
		"cm": "Concatenate",
		"w":  "SetLineWidth",
		"J":  "SetLineCap",
		"j":  "SetLineJoin",
		"M":  "SetMiterLimit",
		"d":  "SetLineDash",
		"ri": "SetRenderingIntent",
		"i":  "SetFlatness",
		"gs": "SetExtGState",

		"BT": "BeginText",
		"ET": "EndText",
		"Tf": "SetFont",
		"Tc": "SetCharSpacing",
		"Tw": "SetWordSpacing",
		"Tz": "SetHorizontalScaling",
		"TL": "SetLeading",
		"Tr": "SetRenderingMode",
		"Ts": "SetRise",
		"Tm": "SetTextMatrix",
		"Td": "MoveText",
		"TD": "MoveTextSetLeading",
		"T*": "NextLine",
		"Tj": "ShowText",
		"'":  "ShowTextLine",
		"\"": "ShowTextLineAndSpace",
		"TJ": "ShowTextAdjusted",

		"Do": "Invoke",

		"m":  "MoveTo",
		"l":  "LineTo",
		"c":  "CurveTo",
		"v":  "CurveToV",
		"y":  "CurveToY",
		"h":  "ClosePath",
		"re": "AppendRect",
		"S":  "PaintPath",
		"s":  "PaintPath",
		"f":  "PaintPath",
		"F":  "PaintPath",
		"f*": "PaintPath",
		"B":  "PaintPath",
		"B*": "PaintPath",
		"b":  "PaintPath",
		"b*": "PaintPath",
		"n":  "EndPath",
		"W":  "ClipPath",
		"W*": "ClipPath",

		"G":   "SetStrokeGray",
		"g":   "SetFillGray",
		"RG":  "SetStrokeRGB",
		"rg":  "SetFillRGB",
		"K":   "SetStrokeCMYK",
		"k":   "SetFillCMYK",
		"CS":  "",
		"cs":  "",
		"SC":  "",
		"SCN": "",
		"sc":  "",
		"scn": "",

		// marked content, compatibility sections, and Type3 glyph
		// metrics carry nothing for extraction
		"BMC": "",
		"BDC": "",
		"EMC": "",
		"MP":  "",
		"DP":  "",
		"BX":  "",
		"EX":  "",
		"d0":  "",
		"d1":  "",
		"sh":  "",
	}
}

// DefaultRegistry returns a registry seeded with DefaultConfig
func DefaultRegistry() *Registry {
	r, err := NewRegistryFromConfig(DefaultConfig())
	if err != nil {
		// the default table is compile-time consistent
		panic(err)
	}
	return r
}
