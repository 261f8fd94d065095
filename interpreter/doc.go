// Package interpreter executes PDF content streams.
//
// The Engine drives the main interpretation loop: it consumes the token
// sequence of a content stream, accumulates operands, and dispatches each
// operator to a handler from its Registry. Handlers mutate the graphics
// state, the text matrices, or call back into the engine to show text.
//
// # Text showing
//
// ShowEncodedText is the arithmetic core. For every character code in a
// shown string it converts the font's glyph-unit metrics through text
// space into display space and emits a TextPosition to the configured
// Sink — the exact geometry a text extractor needs, including the
// space-width hint and the end-of-glyph position that deliberately
// excludes character and word spacing so inter-glyph gaps stay
// measurable.
//
// # State and nesting
//
// The engine owns the graphics state save stack (q/Q), the resource
// scope stack, and the BT/ET text matrices. Form XObjects and Type3 char
// procs re-enter ProcessSubStream recursively on the same engine; each
// nested stream pushes its own resource scope and is guaranteed to pop
// it on every exit path. The engine is single-goroutine; distinct
// engines are independent.
//
// # Errors
//
// A malformed operator never aborts a page. Unknown operators are
// reported once per document, graphics stack underflow leaves state
// untouched, and font metric failures fall back to safe defaults. All
// non-fatal conditions are recorded as Warnings for the caller rather
// than logged.
//
//	sink := interpreter.SinkFunc(func(tp interpreter.TextPosition) { ... })
//	e := interpreter.New(interpreter.WithSink(sink))
//	err := e.ProcessStream(res, stream, pageSize, rotation)
package interpreter
