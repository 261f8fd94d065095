package interpreter

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/font"
	"github.com/tsawler/pdfstream/graphicsstate"
	"github.com/tsawler/pdfstream/model"
)

// Operand helpers. Handlers read from the tail of the operand list, the
// way the operators are written in the stream.

func operandFloat(operands []core.Object, index int) (float64, bool) {
	if index < 0 || index >= len(operands) {
		return 0, false
	}
	return core.AsFloat(operands[index])
}

func operandMatrix(operands []core.Object) (model.Matrix, bool) {
	if len(operands) < 6 {
		return model.Matrix{}, false
	}
	var c [6]float64
	for i := 0; i < 6; i++ {
		v, ok := operandFloat(operands, len(operands)-6+i)
		if !ok {
			return model.Matrix{}, false
		}
		c[i] = v
	}
	return model.NewMatrixFromComponents(c[0], c[1], c[2], c[3], c[4], c[5]), true
}

func operandString(operands []core.Object) (core.String, bool) {
	if len(operands) == 0 {
		return "", false
	}
	s, ok := operands[len(operands)-1].(core.String)
	return s, ok
}

// --- graphics state operators ---

func opSaveGraphicsState(e *Engine, op string, operands []core.Object) error {
	e.SaveGraphicsState()
	return nil
}

func opRestoreGraphicsState(e *Engine, op string, operands []core.Object) error {
	e.RestoreGraphicsState()
	return nil
}

func opConcatenate(e *Engine, op string, operands []core.Object) error {
	m, ok := operandMatrix(operands)
	if !ok {
		e.warn(op, "needs 6 numeric operands")
		return nil
	}
	e.gs.Concatenate(m)
	return nil
}

func opSetLineWidth(e *Engine, op string, operands []core.Object) error {
	if w, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.LineWidth = w
	}
	return nil
}

func opSetLineCap(e *Engine, op string, operands []core.Object) error {
	if c, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.LineCap = int(c)
	}
	return nil
}

func opSetLineJoin(e *Engine, op string, operands []core.Object) error {
	if j, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.LineJoin = int(j)
	}
	return nil
}

func opSetMiterLimit(e *Engine, op string, operands []core.Object) error {
	if m, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.MiterLimit = m
	}
	return nil
}

func opSetLineDash(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 2 {
		return nil
	}
	arr, ok := operands[len(operands)-2].(core.Array)
	if !ok {
		return nil
	}
	phase, _ := operandFloat(operands, len(operands)-1)

	dash := graphicsstate.DashPattern{Phase: phase}
	for i := range arr {
		if v, ok := arr.GetFloat(i); ok {
			dash.Array = append(dash.Array, v)
		}
	}
	e.gs.Dash = dash
	return nil
}

func opSetRenderingIntent(e *Engine, op string, operands []core.Object) error {
	if len(operands) > 0 {
		if name, ok := operands[len(operands)-1].(core.Name); ok {
			e.gs.RenderingIntent = string(name)
		}
	}
	return nil
}

func opSetFlatness(e *Engine, op string, operands []core.Object) error {
	if f, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Flatness = f
	}
	return nil
}

// opSetExtGState applies a named /ExtGState dictionary from the current
// resource scope (gs operator)
func opSetExtGState(e *Engine, op string, operands []core.Object) error {
	if len(operands) == 0 {
		return nil
	}
	name, ok := operands[len(operands)-1].(core.Name)
	if !ok {
		return nil
	}
	res := e.Resources()
	if res == nil {
		e.warn(op, "no resource scope for /%s", name)
		return nil
	}
	dict, ok := res.ExtGState(string(name))
	if !ok {
		e.warn(op, "extended graphics state /%s not found", name)
		return nil
	}

	if w, ok := dict.GetFloat("LW"); ok {
		e.gs.LineWidth = w
	}
	if c, ok := dict.GetInt("LC"); ok {
		e.gs.LineCap = int(c)
	}
	if j, ok := dict.GetInt("LJ"); ok {
		e.gs.LineJoin = int(j)
	}
	if ml, ok := dict.GetFloat("ML"); ok {
		e.gs.MiterLimit = ml
	}
	if d, ok := dict.GetArray("D"); ok && len(d) == 2 {
		if arr, ok := d.Get(0).(core.Array); ok {
			dash := graphicsstate.DashPattern{}
			for i := range arr {
				if v, ok := arr.GetFloat(i); ok {
					dash.Array = append(dash.Array, v)
				}
			}
			dash.Phase, _ = d.GetFloat(1)
			e.gs.Dash = dash
		}
	}
	if ri, ok := dict.GetName("RI"); ok {
		e.gs.RenderingIntent = string(ri)
	}
	if fl, ok := dict.GetFloat("FL"); ok {
		e.gs.Flatness = fl
	}
	if sm, ok := dict.GetFloat("SM"); ok {
		e.gs.Smoothness = sm
	}
	if tk, ok := dict.Get("TK").(core.Bool); ok {
		e.gs.Text.Knockout = bool(tk)
	}
	if fontSpec, ok := dict.GetArray("Font"); ok && len(fontSpec) == 2 {
		size, _ := fontSpec.GetFloat(1)
		fontDict, isDict := resolveToDict(fontSpec.Get(0), res.Resolver())
		if isDict {
			if f, err := font.Load("", fontDict, res.Resolver()); err == nil {
				e.gs.SetFont(f, size)
			} else {
				e.warn(op, "load /Font entry: %v", err)
			}
		}
	}
	return nil
}

// --- text object operators ---

func opBeginText(e *Engine, op string, operands []core.Object) error {
	tm := model.NewMatrix()
	tlm := model.NewMatrix()
	e.textMatrix = &tm
	e.textLineMatrix = &tlm
	return nil
}

func opEndText(e *Engine, op string, operands []core.Object) error {
	e.textMatrix = nil
	e.textLineMatrix = nil
	return nil
}

// --- text state operators ---

func opSetFont(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 2 {
		e.warn(op, "needs font name and size")
		return nil
	}
	name, ok := operands[len(operands)-2].(core.Name)
	if !ok {
		return nil
	}
	size, _ := operandFloat(operands, len(operands)-1)

	f, ok := e.Fonts()[string(name)]
	if !ok {
		e.warn(op, "font /%s not found in resources", name)
	}
	e.gs.SetFont(f, size)
	return nil
}

func opSetCharSpacing(e *Engine, op string, operands []core.Object) error {
	if v, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Text.CharSpacing = v
	}
	return nil
}

func opSetWordSpacing(e *Engine, op string, operands []core.Object) error {
	if v, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Text.WordSpacing = v
	}
	return nil
}

func opSetHorizontalScaling(e *Engine, op string, operands []core.Object) error {
	if v, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Text.HorizontalScaling = v
	}
	return nil
}

func opSetLeading(e *Engine, op string, operands []core.Object) error {
	if v, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Text.Leading = v
	}
	return nil
}

func opSetRenderingMode(e *Engine, op string, operands []core.Object) error {
	if v, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Text.RenderingMode = graphicsstate.RenderingMode(v)
	}
	return nil
}

func opSetRise(e *Engine, op string, operands []core.Object) error {
	if v, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.Text.Rise = v
	}
	return nil
}

// --- text positioning operators ---

func opSetTextMatrix(e *Engine, op string, operands []core.Object) error {
	m, ok := operandMatrix(operands)
	if !ok {
		e.warn(op, "needs 6 numeric operands")
		return nil
	}
	tm := m
	tlm := m
	e.textMatrix = &tm
	e.textLineMatrix = &tlm
	return nil
}

// moveTextPosition translates the text line matrix and resets the text
// matrix to it, the shared core of Td, TD, and T*
func moveTextPosition(e *Engine, tx, ty float64) {
	if e.textLineMatrix == nil {
		tm := model.NewMatrix()
		tlm := model.NewMatrix()
		e.textMatrix = &tm
		e.textLineMatrix = &tlm
	}
	tlm := model.Translation(tx, ty).Mul(*e.textLineMatrix)
	*e.textLineMatrix = tlm
	tm := tlm
	e.textMatrix = &tm
}

func opMoveText(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 2 {
		return nil
	}
	tx, _ := operandFloat(operands, len(operands)-2)
	ty, _ := operandFloat(operands, len(operands)-1)
	moveTextPosition(e, tx, ty)
	return nil
}

func opMoveTextSetLeading(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 2 {
		return nil
	}
	ty, _ := operandFloat(operands, len(operands)-1)
	e.gs.Text.Leading = -ty
	return opMoveText(e, op, operands)
}

func opNextLine(e *Engine, op string, operands []core.Object) error {
	moveTextPosition(e, 0, -e.gs.Text.Leading)
	return nil
}

// --- text showing operators ---

func opShowText(e *Engine, op string, operands []core.Object) error {
	s, ok := operandString(operands)
	if !ok {
		e.warn(op, "needs a string operand")
		return nil
	}
	return e.ShowEncodedText(s.Bytes())
}

func opShowTextLine(e *Engine, op string, operands []core.Object) error {
	moveTextPosition(e, 0, -e.gs.Text.Leading)
	return opShowText(e, op, operands)
}

func opShowTextLineAndSpace(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 3 {
		e.warn(op, "needs word spacing, char spacing, and a string")
		return nil
	}
	if aw, ok := operandFloat(operands, len(operands)-3); ok {
		e.gs.Text.WordSpacing = aw
	}
	if ac, ok := operandFloat(operands, len(operands)-2); ok {
		e.gs.Text.CharSpacing = ac
	}
	moveTextPosition(e, 0, -e.gs.Text.Leading)
	return opShowText(e, op, operands)
}

// opShowTextAdjusted handles TJ: strings shown normally, numbers applied
// as thousandths-of-em adjustments to the text matrix
func opShowTextAdjusted(e *Engine, op string, operands []core.Object) error {
	if len(operands) == 0 {
		return nil
	}
	arr, ok := operands[len(operands)-1].(core.Array)
	if !ok {
		e.warn(op, "needs an array operand")
		return nil
	}

	for _, item := range arr {
		switch v := item.(type) {
		case core.String:
			if err := e.ShowEncodedText(v.Bytes()); err != nil {
				return err
			}
		case core.Int, core.Real:
			if e.textMatrix == nil {
				continue
			}
			adj, _ := core.AsFloat(v)
			tx := -adj / 1000 * e.gs.Text.FontSize * (e.gs.Text.HorizontalScaling / 100)
			*e.textMatrix = model.Translation(tx, 0).Mul(*e.textMatrix)
		}
	}
	return nil
}

// --- XObjects ---

// opInvoke handles Do. Form XObjects execute as sub-streams under their
// own resources with their matrix concatenated inside a save/restore
// pair; image XObjects are reported to the image observer.
func opInvoke(e *Engine, op string, operands []core.Object) error {
	if len(operands) == 0 {
		return nil
	}
	name, ok := operands[len(operands)-1].(core.Name)
	if !ok {
		return nil
	}
	res := e.Resources()
	if res == nil {
		e.warn(op, "no resource scope for /%s", name)
		return nil
	}
	stream, ok := res.XObject(string(name))
	if !ok {
		e.warn(op, "XObject /%s not found", name)
		return nil
	}

	subtype, _ := stream.Dict.GetName("Subtype")
	switch subtype {
	case "Form":
		return e.invokeForm(string(name), stream, res)
	case "Image":
		if e.imageObserver != nil {
			e.imageObserver(string(name), stream, e.gs.CTM)
		}
		return nil
	default:
		e.warn(op, "XObject /%s has unsupported subtype /%s", name, subtype)
		return nil
	}
}

// invokeForm executes a Form XObject as a nested sub-stream
func (e *Engine) invokeForm(name string, stream *core.Stream, parent *Resources) error {
	e.SaveGraphicsState()
	defer e.RestoreGraphicsState()

	if m, ok := formMatrix(stream.Dict); ok {
		e.gs.Concatenate(m)
	}

	var sub *Resources
	if resDict, ok := resolveToDict(stream.Dict.Get("Resources"), parent.Resolver()); ok {
		sub = NewResources(resDict, parent.Resolver())
	}
	return e.ProcessSubStream(sub, stream)
}

// formMatrix reads the optional /Matrix entry of a Form XObject
func formMatrix(dict core.Dict) (model.Matrix, bool) {
	arr, ok := dict.GetArray("Matrix")
	if !ok || len(arr) < 6 {
		return model.Matrix{}, false
	}
	var c [6]float64
	for i := 0; i < 6; i++ {
		c[i], _ = arr.GetFloat(i)
	}
	return model.NewMatrixFromComponents(c[0], c[1], c[2], c[3], c[4], c[5]), true
}

// --- path construction ---

func opMoveTo(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 2 {
		return nil
	}
	x, _ := operandFloat(operands, len(operands)-2)
	y, _ := operandFloat(operands, len(operands)-1)
	e.currentPath.MoveTo(x, y)
	return nil
}

func opLineTo(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 2 {
		return nil
	}
	x, _ := operandFloat(operands, len(operands)-2)
	y, _ := operandFloat(operands, len(operands)-1)
	e.currentPath.LineTo(x, y)
	return nil
}

func opCurveTo(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 6 {
		return nil
	}
	var c [6]float64
	for i := 0; i < 6; i++ {
		c[i], _ = operandFloat(operands, len(operands)-6+i)
	}
	e.currentPath.CurveTo(c[0], c[1], c[2], c[3], c[4], c[5])
	return nil
}

func opCurveToV(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 4 {
		return nil
	}
	var c [4]float64
	for i := 0; i < 4; i++ {
		c[i], _ = operandFloat(operands, len(operands)-4+i)
	}
	e.currentPath.CurveToV(c[0], c[1], c[2], c[3])
	return nil
}

func opCurveToY(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 4 {
		return nil
	}
	var c [4]float64
	for i := 0; i < 4; i++ {
		c[i], _ = operandFloat(operands, len(operands)-4+i)
	}
	e.currentPath.CurveToY(c[0], c[1], c[2], c[3])
	return nil
}

func opClosePath(e *Engine, op string, operands []core.Object) error {
	e.currentPath.ClosePath()
	return nil
}

func opAppendRect(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 4 {
		return nil
	}
	var c [4]float64
	for i := 0; i < 4; i++ {
		c[i], _ = operandFloat(operands, len(operands)-4+i)
	}
	e.currentPath.Rectangle(c[0], c[1], c[2], c[3])
	return nil
}

// --- path painting ---

// opPaintPath handles all the painting operators; the mnemonic decides
// closing, stroking, and filling
func opPaintPath(e *Engine, op string, operands []core.Object) error {
	var stroked, filled bool
	switch op {
	case "S":
		stroked = true
	case "s":
		e.currentPath.ClosePath()
		stroked = true
	case "f", "F", "f*":
		filled = true
	case "B", "B*":
		stroked, filled = true, true
	case "b", "b*":
		e.currentPath.ClosePath()
		stroked, filled = true, true
	default:
		return fmt.Errorf("unexpected painting operator %q", op)
	}

	e.pathRecorder.Paint(e.currentPath, e.gs, stroked, filled)
	e.finishPath()
	return nil
}

func opEndPath(e *Engine, op string, operands []core.Object) error {
	e.finishPath()
	return nil
}

// opClipPath handles W and W*: the current path becomes the clip path
// when the path is finished
func opClipPath(e *Engine, op string, operands []core.Object) error {
	e.pendingClip = true
	return nil
}

// finishPath clears the current path, applying a pending clip first
func (e *Engine) finishPath() {
	if e.pendingClip {
		clip := *e.currentPath
		clip.Segments = append([]graphicsstate.PathSegment(nil), e.currentPath.Segments...)
		e.gs.ClipPath = &clip
		e.pendingClip = false
	}
	e.currentPath.Clear()
}

// --- color operators ---

func opSetStrokeGray(e *Engine, op string, operands []core.Object) error {
	if g, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.StrokeColor = graphicsstate.DeviceGray(g)
	}
	return nil
}

func opSetFillGray(e *Engine, op string, operands []core.Object) error {
	if g, ok := operandFloat(operands, len(operands)-1); ok {
		e.gs.FillColor = graphicsstate.DeviceGray(g)
	}
	return nil
}

func opSetStrokeRGB(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 3 {
		return nil
	}
	r, _ := operandFloat(operands, len(operands)-3)
	g, _ := operandFloat(operands, len(operands)-2)
	b, _ := operandFloat(operands, len(operands)-1)
	e.gs.StrokeColor = graphicsstate.DeviceRGB(r, g, b)
	return nil
}

func opSetFillRGB(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 3 {
		return nil
	}
	r, _ := operandFloat(operands, len(operands)-3)
	g, _ := operandFloat(operands, len(operands)-2)
	b, _ := operandFloat(operands, len(operands)-1)
	e.gs.FillColor = graphicsstate.DeviceRGB(r, g, b)
	return nil
}

func opSetStrokeCMYK(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 4 {
		return nil
	}
	c, _ := operandFloat(operands, len(operands)-4)
	m, _ := operandFloat(operands, len(operands)-3)
	y, _ := operandFloat(operands, len(operands)-2)
	k, _ := operandFloat(operands, len(operands)-1)
	e.gs.StrokeColor = graphicsstate.DeviceCMYK(c, m, y, k)
	return nil
}

func opSetFillCMYK(e *Engine, op string, operands []core.Object) error {
	if len(operands) < 4 {
		return nil
	}
	c, _ := operandFloat(operands, len(operands)-4)
	m, _ := operandFloat(operands, len(operands)-3)
	y, _ := operandFloat(operands, len(operands)-2)
	k, _ := operandFloat(operands, len(operands)-1)
	e.gs.FillColor = graphicsstate.DeviceCMYK(c, m, y, k)
	return nil
}
