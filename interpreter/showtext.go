package interpreter

import (
	"github.com/tsawler/pdfstream/model"
)

// Variable naming in this file follows the three coordinate systems
// involved: glyph units come from the font, Text means text space, and
// Disp means display space. No glyph-unit value survives past its
// conversion.

// ShowEncodedText interprets a byte string in the current font and emits
// one TextPosition per character code. This is the arithmetic core of the
// interpreter; the text showing operators all funnel into it. Custom
// handlers may call it directly.
func (e *Engine) ShowEncodedText(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if e.textMatrix == nil || e.textLineMatrix == nil {
		// a text showing operator outside BT/ET; recover with identity
		e.warn("", "text shown outside BT/ET")
		tm := model.NewMatrix()
		tlm := model.NewMatrix()
		e.textMatrix = &tm
		e.textLineMatrix = &tlm
	}

	ts := e.gs.Text
	f := ts.Font
	if f == nil {
		e.warn("", "text shown with no font set")
		return nil
	}

	fontSizeText := ts.FontSize
	horizontalScalingText := ts.HorizontalScaling / 100
	riseText := ts.Rise
	wordSpacingText := ts.WordSpacing
	characterSpacingText := ts.CharSpacing

	// glyph units are thousandths of text space for every font type
	// except Type3, which carries its own font matrix
	fontMatrixXScaling := 1.0 / 1000
	fontMatrixYScaling := 1.0 / 1000
	glyphSpaceToTextSpace := 1.0 / 1000
	if f.IsType3() {
		fm := f.FontMatrix()
		fontMatrixXScaling = fm[0][0]
		fontMatrixYScaling = fm[1][1]
		if fm[0][0] != 0 {
			glyphSpaceToTextSpace = 1 / fm[0][0]
		}
	}

	// space width hint, with fallbacks: some fonts cannot answer at all
	spaceWidthText := 0.0
	if sw, err := f.SpaceWidth(); err != nil {
		e.warn("", "font %s space width: %v", f.Name(), err)
	} else {
		spaceWidthText = sw * glyphSpaceToTextSpace
	}
	if spaceWidthText == 0 {
		// the average width overshoots for a space, so shrink it
		spaceWidthText = f.AverageWidth() * glyphSpaceToTextSpace * 0.80
	}
	if spaceWidthText == 0 {
		spaceWidthText = 1.0
	}

	textStateParameters := model.NewMatrix()
	textStateParameters[0][0] = fontSizeText * horizontalScalingText
	textStateParameters[1][1] = fontSizeText
	textStateParameters[2][1] = riseText

	pageWidth := e.drawingArea.Width
	pageHeight := e.drawingArea.Height
	ctm := e.gs.CTM

	maxVerticalDisplacementText := 0.0

	codeLength := 1
	for i := 0; i < len(data); i += codeLength {
		codeLength = 1
		text, ok := f.Encode(data, i, codeLength)
		if !ok && i+1 < len(data) {
			// maybe a multi-byte code
			codeLength++
			text, ok = f.Encode(data, i, codeLength)
		}
		codePoints := []int{f.CodeFromBytes(data, i, codeLength)}

		spaceWidthDisp := spaceWidthText * fontSizeText * horizontalScalingText *
			e.textMatrix.XScale() * ctm.XScale()

		// TODO: vertical writing mode would use the y displacement here
		charHorizontalDisplacementText := f.Width(data, i, codeLength) * fontMatrixXScaling
		charVerticalDisplacementText := f.Height(data, i, codeLength) * fontMatrixYScaling
		if charVerticalDisplacementText > maxVerticalDisplacementText {
			maxVerticalDisplacementText = charVerticalDisplacementText
		}

		// Word spacing applies only to single-byte code 32, never to a
		// 0x20 byte inside a multi-byte code. Fonts that place a space
		// glyph on another code get no word spacing either.
		spacingText := 0.0
		if data[i] == 0x20 && codeLength == 1 {
			spacingText += wordSpacingText
		}

		textXctm := e.textMatrix.Mul(ctm)

		// start-of-glyph matrix in display space; a fresh value handed to
		// the sink, never reused for the computations below
		textMatrixStart := textStateParameters.Mul(textXctm)

		// end of glyph, excluding character and word spacing: text
		// extraction needs the raw inter-glyph gap to find word breaks
		tx := charHorizontalDisplacementText * fontSizeText * horizontalScalingText
		td := model.Translation(tx, 0)
		textMatrixEnd := textStateParameters.Mul(td).Mul(textXctm)
		endX := textMatrixEnd.XPosition()
		endY := textMatrixEnd.YPosition()

		// advance the text matrix, now including the spacing terms
		tx = (charHorizontalDisplacementText*fontSizeText + characterSpacingText + spacingText) *
			horizontalScalingText
		advance := model.Translation(tx, 0)
		*e.textMatrix = advance.Mul(*e.textMatrix)

		widthText := endX - textMatrixStart.XPosition()

		// a decode failure must not surface as the text "null"
		if !ok {
			text = "?"
		}

		totalVerticalDisplacementDisp := maxVerticalDisplacementText * fontSizeText *
			textXctm.YScale()

		e.sink.OnTextPosition(TextPosition{
			PageRotation:         e.pageRotation,
			PageWidth:            pageWidth,
			PageHeight:           pageHeight,
			TextMatrix:           textMatrixStart,
			EndX:                 endX,
			EndY:                 endY,
			VerticalDisplacement: totalVerticalDisplacementDisp,
			WidthText:            widthText,
			SpaceWidth:           spaceWidthDisp,
			Text:                 text,
			CodePoints:           codePoints,
			Font:                 f,
			FontSize:             fontSizeText,
			FontSizePixels:       int(fontSizeText * e.textMatrix.XScale()),
		})
	}
	return nil
}
