package graphicsstate

import (
	"testing"

	"github.com/tsawler/pdfstream/model"
)

// TestPathConstruction tests segment accumulation and current point
func TestPathConstruction(t *testing.T) {
	p := NewPath()

	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.ClosePath()

	if len(p.Segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(p.Segments))
	}
	if p.CurrentPoint != (model.Point{X: 0, Y: 0}) {
		t.Errorf("close should return to subpath start, got %v", p.CurrentPoint)
	}
}

// TestLineToWithoutCurrentPoint tests the implicit moveto
func TestLineToWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.LineTo(5, 5)

	if len(p.Segments) != 1 || p.Segments[0].Type != PathMoveTo {
		t.Error("lineto without current point should become moveto")
	}
}

// TestRecorderRectangle tests rectangle detection from re
func TestRecorderRectangle(t *testing.T) {
	gs := New(model.BBox{})
	gs.FillColor = DeviceRGB(1, 0, 0)
	rec := NewPathRecorder()

	p := NewPath()
	p.Rectangle(10, 20, 100, 50)
	rec.Paint(p, gs, false, true)

	if len(rec.Rects) != 1 {
		t.Fatalf("expected 1 rectangle, got %d (lines: %d)", len(rec.Rects), len(rec.Lines))
	}
	r := rec.Rects[0]
	if !r.IsFilled || r.IsStroked {
		t.Error("expected filled, unstroked rectangle")
	}
	if r.BBox.X != 10 || r.BBox.Y != 20 || r.BBox.Width != 100 || r.BBox.Height != 50 {
		t.Errorf("unexpected bbox: %+v", r.BBox)
	}
	if r.FillColor.Space != "DeviceRGB" {
		t.Errorf("expected fill color recorded, got %+v", r.FillColor)
	}
}

// TestRecorderRectangleTransformed tests CTM application
func TestRecorderRectangleTransformed(t *testing.T) {
	gs := New(model.BBox{})
	gs.Concatenate(model.Scaling(2, 2))
	rec := NewPathRecorder()

	p := NewPath()
	p.Rectangle(10, 10, 5, 5)
	rec.Paint(p, gs, true, false)

	if len(rec.Rects) != 1 {
		t.Fatalf("expected 1 rectangle, got %d", len(rec.Rects))
	}
	bbox := rec.Rects[0].BBox
	if bbox.X != 20 || bbox.Width != 10 {
		t.Errorf("expected scaled bbox, got %+v", bbox)
	}
}

// TestRecorderLineClassification tests horizontal/vertical tagging
func TestRecorderLineClassification(t *testing.T) {
	gs := New(model.BBox{})
	rec := NewPathRecorder()

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)  // horizontal
	p.LineTo(100, 50) // vertical
	p.LineTo(150, 99) // diagonal
	rec.Paint(p, gs, true, false)

	if len(rec.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(rec.Lines))
	}
	if !rec.Lines[0].IsHorizontal || rec.Lines[0].IsVertical {
		t.Error("first line should be horizontal")
	}
	if !rec.Lines[1].IsVertical || rec.Lines[1].IsHorizontal {
		t.Error("second line should be vertical")
	}
	if rec.Lines[2].IsHorizontal || rec.Lines[2].IsVertical {
		t.Error("third line should be diagonal")
	}
}

// TestRecorderSkipsUnstrokedLines tests that fill-only non-rectangles
// record nothing
func TestRecorderSkipsUnstrokedLines(t *testing.T) {
	gs := New(model.BBox{})
	rec := NewPathRecorder()

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 17)
	rec.Paint(p, gs, false, true)

	if len(rec.Lines) != 0 || len(rec.Rects) != 0 {
		t.Error("fill of a non-rectangle should record nothing")
	}
}

// TestRecorderEmptyPath tests that empty paths are ignored
func TestRecorderEmptyPath(t *testing.T) {
	rec := NewPathRecorder()
	rec.Paint(NewPath(), New(model.BBox{}), true, true)

	if len(rec.Lines) != 0 || len(rec.Rects) != 0 {
		t.Error("empty path should record nothing")
	}
}
