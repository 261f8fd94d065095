package interpreter

import (
	"fmt"
	"io"

	"github.com/tsawler/pdfstream/contentstream"
	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/font"
	"github.com/tsawler/pdfstream/graphicsstate"
	"github.com/tsawler/pdfstream/model"
)

// Warning is a non-fatal condition recorded while interpreting a stream.
// Warnings are returned to the caller instead of being logged, so library
// users decide what surfaces.
type Warning struct {
	Op      string
	Message string
}

func (w Warning) String() string {
	if w.Op == "" {
		return w.Message
	}
	return w.Op + ": " + w.Message
}

// Engine interprets PDF content streams. It owns the graphics state and
// its save stack, the resource scope stack, and the two text matrices,
// and drives operator dispatch over a token stream.
//
// An Engine is strictly single-goroutine: state is mutable and
// unsynchronised. Recursive use from the same goroutine is supported and
// required — Form XObjects and Type3 char procs re-enter ProcessSubStream
// while an outer sub-stream is still executing.
type Engine struct {
	registry    *Registry
	unsupported map[string]bool
	warnings    []Warning

	sink          Sink
	imageObserver ImageObserver

	gs      *graphicsstate.GraphicsState
	gsStack []*graphicsstate.GraphicsState

	textMatrix     *model.Matrix
	textLineMatrix *model.Matrix

	resourcesStack []*Resources

	currentPath  *graphicsstate.Path
	pathRecorder *graphicsstate.PathRecorder
	pendingClip  bool

	pageRotation int
	drawingArea  model.BBox

	forceParsing bool
	disposed     bool
}

// Option configures an Engine
type Option func(*Engine)

// WithSink sets the text position sink
func WithSink(s Sink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

// WithRegistry replaces the default operator registry
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithImageObserver sets the callback for image XObject invocations
func WithImageObserver(obs ImageObserver) Option {
	return func(e *Engine) {
		e.imageObserver = obs
	}
}

// WithForceParsing asks the tokenizer to recover from malformed input
func WithForceParsing(force bool) Option {
	return func(e *Engine) {
		e.forceParsing = force
	}
}

// New creates an engine with the default operator registry
func New(opts ...Option) *Engine {
	e := &Engine{
		registry:     DefaultRegistry(),
		unsupported:  make(map[string]bool),
		sink:         noopSink{},
		gs:           graphicsstate.New(model.BBox{}),
		currentPath:  graphicsstate.NewPath(),
		pathRecorder: graphicsstate.NewPathRecorder(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig creates an engine with an operator registry built from a
// configuration. Unknown handler identifiers are a construction error.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	registry, err := NewRegistryFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithRegistry(registry)}, opts...)...), nil
}

// warn records a non-fatal condition
func (e *Engine) warn(op, format string, args ...interface{}) {
	e.warnings = append(e.warnings, Warning{Op: op, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the warnings recorded since the last ResetEngine
func (e *Engine) Warnings() []Warning {
	return e.warnings
}

// ForceParsing reports whether force parsing is active
func (e *Engine) ForceParsing() bool {
	return e.forceParsing
}

// SetForceParsing enables or disables tokenizer error recovery
func (e *Engine) SetForceParsing(force bool) {
	e.forceParsing = force
}

// RegisterOperatorHandler binds a custom handler to an operator
func (e *Engine) RegisterOperatorHandler(op string, h Handler) {
	e.registry.Register(op, h)
}

// ResetEngine clears the per-document caches: the unsupported-operator
// set and the accumulated warnings. Call it between documents.
func (e *Engine) ResetEngine() {
	e.unsupported = make(map[string]bool)
	e.warnings = nil
}

// Dispose drops all stacks and handler registrations. The engine is
// unusable afterwards.
func (e *Engine) Dispose() {
	e.disposed = true
	e.gs = nil
	e.gsStack = nil
	e.textMatrix = nil
	e.textLineMatrix = nil
	e.resourcesStack = nil
	e.registry = NewRegistry()
	e.unsupported = make(map[string]bool)
	e.currentPath = nil
	e.pathRecorder = nil
}

// initStream prepares the engine for a fresh page-level stream
func (e *Engine) initStream(pageSize model.BBox, rotation int) {
	e.drawingArea = pageSize
	e.pageRotation = rotation
	e.gs = graphicsstate.New(pageSize)
	e.textMatrix = nil
	e.textLineMatrix = nil
	e.gsStack = e.gsStack[:0]
	e.resourcesStack = e.resourcesStack[:0]
	e.currentPath = graphicsstate.NewPath()
	e.pathRecorder.Clear()
	e.pendingClip = false
}

// ProcessStream initialises page state and interprets a page-level
// content stream against the given resources
func (e *Engine) ProcessStream(res *Resources, stream *core.Stream, pageSize model.BBox, rotation int) error {
	if e.disposed {
		return fmt.Errorf("engine is disposed")
	}
	e.initStream(pageSize, rotation)
	return e.ProcessSubStream(res, stream)
}

// ProcessSubStream interprets a nested content stream. The resource scope
// is pushed for the duration of the stream and popped on every exit path,
// so nested Do invocations and Type3 char procs cannot leak scopes.
func (e *Engine) ProcessSubStream(res *Resources, stream *core.Stream) error {
	if e.disposed {
		return fmt.Errorf("engine is disposed")
	}
	if res != nil {
		e.resourcesStack = append(e.resourcesStack, res)
		defer func() {
			top := e.resourcesStack[len(e.resourcesStack)-1]
			e.resourcesStack = e.resourcesStack[:len(e.resourcesStack)-1]
			top.release()
		}()
	}
	return e.processTokens(stream)
}

// processTokens runs the interpretation loop: accumulate operands until
// an operator token arrives, then dispatch.
func (e *Engine) processTokens(stream *core.Stream) error {
	data, err := stream.Decode()
	if err != nil {
		return fmt.Errorf("decode content stream: %w", err)
	}

	tok := contentstream.NewTokenizer(data, contentstream.WithForceParsing(e.forceParsing))
	var operands []core.Object

	for {
		token, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("tokenize content stream: %w", err)
		}

		if token.Kind == contentstream.TokenOperand {
			operands = append(operands, e.derefOperand(token.Operand))
			continue
		}

		if err := e.processOperator(token.Operator, operands); err != nil {
			return err
		}
		operands = nil
	}

	if skipped := tok.Skipped(); skipped > 0 {
		e.warn("", "force parsing skipped %d malformed runs", skipped)
	}
	return nil
}

// derefOperand resolves an indirect-reference operand before it is
// accumulated
func (e *Engine) derefOperand(obj core.Object) core.Object {
	ref, ok := obj.(core.IndirectRef)
	if !ok {
		return obj
	}
	res := e.Resources()
	if res == nil {
		e.warn("", "indirect operand %s with no resource scope", ref)
		return core.Null{}
	}
	resolved, err := res.Resolver().Resolve(ref)
	if err != nil {
		e.warn("", "resolve operand %s: %v", ref, err)
		return core.Null{}
	}
	return resolved
}

// ProcessOperator executes a single operator by mnemonic. This is the
// public entry point: handler errors are recorded as warnings rather than
// propagated, so a malformed operator cannot abort extraction.
func (e *Engine) ProcessOperator(op string, operands []core.Object) {
	if err := e.processOperator(op, operands); err != nil {
		e.warn(op, "%v", err)
	}
}

// processOperator dispatches to the registered handler. Unknown operators
// are reported once per document and skipped; handler errors propagate to
// the enclosing sub-stream.
func (e *Engine) processOperator(op string, operands []core.Object) error {
	if e.registry.Disabled(op) {
		return nil
	}
	h, ok := e.registry.Handler(op)
	if !ok {
		if !e.unsupported[op] {
			e.unsupported[op] = true
			e.warn(op, "unsupported operator")
		}
		return nil
	}
	return h.Process(e, op, operands)
}

// --- graphics state stack ---

// SaveGraphicsState pushes a deep clone of the current state, leaving the
// current instance mutable (q operator)
func (e *Engine) SaveGraphicsState() {
	e.gsStack = append(e.gsStack, e.gs.Clone())
}

// RestoreGraphicsState pops the saved state (Q operator). Underflow is
// recorded as a warning and leaves the state unchanged.
func (e *Engine) RestoreGraphicsState() {
	if len(e.gsStack) == 0 {
		e.warn("Q", "graphics state stack underflow")
		return
	}
	e.gs = e.gsStack[len(e.gsStack)-1]
	e.gsStack = e.gsStack[:len(e.gsStack)-1]
}

// GraphicsStackSize returns the depth of the save stack
func (e *Engine) GraphicsStackSize() int {
	return len(e.gsStack)
}

// GraphicsState returns the current graphics state
func (e *Engine) GraphicsState() *graphicsstate.GraphicsState {
	return e.gs
}

// SetGraphicsState replaces the current graphics state
func (e *Engine) SetGraphicsState(gs *graphicsstate.GraphicsState) {
	e.gs = gs
}

// --- text matrices ---

// TextMatrix returns the current text matrix, nil outside BT/ET
func (e *Engine) TextMatrix() *model.Matrix {
	return e.textMatrix
}

// SetTextMatrix replaces the current text matrix
func (e *Engine) SetTextMatrix(m *model.Matrix) {
	e.textMatrix = m
}

// TextLineMatrix returns the current text line matrix, nil outside BT/ET
func (e *Engine) TextLineMatrix() *model.Matrix {
	return e.textLineMatrix
}

// SetTextLineMatrix replaces the current text line matrix
func (e *Engine) SetTextLineMatrix(m *model.Matrix) {
	e.textLineMatrix = m
}

// --- resource scope stack ---

// Resources returns the innermost resource scope, or nil when no scope
// is active
func (e *Engine) Resources() *Resources {
	if len(e.resourcesStack) == 0 {
		return nil
	}
	return e.resourcesStack[len(e.resourcesStack)-1]
}

// Fonts returns the fonts of the innermost scope; empty when no scope is
// active
func (e *Engine) Fonts() map[string]font.Font {
	res := e.Resources()
	if res == nil {
		return map[string]font.Font{}
	}
	return res.Fonts()
}

// SetFonts replaces the fonts of the innermost scope
func (e *Engine) SetFonts(fonts map[string]font.Font) {
	if res := e.Resources(); res != nil {
		res.SetFonts(fonts)
	}
}

// XObjects returns the XObject dictionary of the innermost scope; empty
// when no scope is active
func (e *Engine) XObjects() core.Dict {
	res := e.Resources()
	if res == nil {
		return core.Dict{}
	}
	return res.XObjects()
}

// ExtGStates returns the extended graphics state dictionary of the
// innermost scope; empty when no scope is active
func (e *Engine) ExtGStates() core.Dict {
	res := e.Resources()
	if res == nil {
		return core.Dict{}
	}
	return res.ExtGStates()
}

// SetExtGStates replaces the extended graphics state dictionary of the
// innermost scope
func (e *Engine) SetExtGStates(dict core.Dict) {
	if res := e.Resources(); res != nil {
		res.SetExtGStates(dict)
	}
}

// --- page geometry ---

// PageRotation returns the rotation passed to ProcessStream
func (e *Engine) PageRotation() int {
	return e.pageRotation
}

// DrawingArea returns the page size passed to ProcessStream
func (e *Engine) DrawingArea() model.BBox {
	return e.drawingArea
}

// PathRecorder returns the recorder collecting painted line and
// rectangle geometry
func (e *Engine) PathRecorder() *graphicsstate.PathRecorder {
	return e.pathRecorder
}

// --- Type3 char procs ---

// ProcessType3Character executes the glyph procedure of a Type3 font
// character as a nested sub-stream under the font's own resource scope.
// Rasterising subclasses call this per shown code; the default text
// pipeline does not need glyph outlines.
func (e *Engine) ProcessType3Character(f *font.Type3Font, code byte) error {
	proc, ok := f.CharProc(code)
	if !ok {
		e.warn("", "type3 font %s: no char proc for code %d", f.Name(), code)
		return nil
	}

	var res *Resources
	if f.Resources() != nil {
		var resolve func(core.IndirectRef) (core.Object, error)
		if top := e.Resources(); top != nil {
			resolve = top.Resolver()
		}
		res = NewResources(f.Resources(), resolve)
	}

	e.SaveGraphicsState()
	defer e.RestoreGraphicsState()
	e.gs.Concatenate(f.FontMatrix())

	return e.ProcessSubStream(res, proc)
}
