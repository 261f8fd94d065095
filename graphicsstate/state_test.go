package graphicsstate

import (
	"testing"

	"github.com/tsawler/pdfstream/model"
)

// TestNewDefaults tests initial state values
func TestNewDefaults(t *testing.T) {
	gs := New(model.NewBBox(0, 0, 612, 792))

	if !gs.CTM.IsIdentity() {
		t.Error("expected identity CTM")
	}
	if gs.LineWidth != 1.0 {
		t.Errorf("expected line width 1.0, got %f", gs.LineWidth)
	}
	if gs.MiterLimit != 10.0 {
		t.Errorf("expected miter limit 10.0, got %f", gs.MiterLimit)
	}
	if gs.Text.HorizontalScaling != 100.0 {
		t.Errorf("expected horizontal scaling 100.0, got %f", gs.Text.HorizontalScaling)
	}
	if gs.Text.Font != nil {
		t.Error("expected no font before Tf")
	}
	if gs.StrokeColor.Space != "DeviceGray" || gs.StrokeColor.Components[0] != 0 {
		t.Errorf("expected black stroke color, got %+v", gs.StrokeColor)
	}
	if gs.ClipPath == nil || gs.ClipPath.IsEmpty() {
		t.Error("expected clip path covering the drawing area")
	}
}

// TestCloneIsolation tests that mutating a clone leaves the source alone
func TestCloneIsolation(t *testing.T) {
	gs := New(model.NewBBox(0, 0, 612, 792))
	gs.Dash = DashPattern{Array: []float64{3, 1}, Phase: 0}
	gs.FillColor = DeviceRGB(0.5, 0.5, 0.5)
	gs.Text.CharSpacing = 1.5

	clone := gs.Clone()
	clone.CTM = model.Scaling(2, 2)
	clone.LineWidth = 9
	clone.Dash.Array[0] = 99
	clone.FillColor.Components[0] = 0.9
	clone.Text.CharSpacing = 7
	clone.Text.FontSize = 30

	if !gs.CTM.IsIdentity() {
		t.Error("clone CTM mutation leaked into source")
	}
	if gs.LineWidth != 1.0 {
		t.Error("clone line width mutation leaked into source")
	}
	if gs.Dash.Array[0] != 3 {
		t.Error("clone dash mutation leaked into source")
	}
	if gs.FillColor.Components[0] != 0.5 {
		t.Error("clone color mutation leaked into source")
	}
	if gs.Text.CharSpacing != 1.5 {
		t.Error("clone text state mutation leaked into source")
	}
	if gs.Text.FontSize != 0 {
		t.Error("clone font size mutation leaked into source")
	}
}

// TestConcatenate tests post-multiplication into the CTM
func TestConcatenate(t *testing.T) {
	gs := New(model.BBox{})

	gs.Concatenate(model.Translation(10, 20))
	gs.Concatenate(model.Scaling(2, 2))

	// CTM = scale x translation: the scale applies inside the translated frame
	if gs.CTM.XPosition() != 10 || gs.CTM.YPosition() != 20 {
		t.Errorf("expected position (10, 20), got (%f, %f)", gs.CTM.XPosition(), gs.CTM.YPosition())
	}
	if gs.CTM.XScale() != 2 {
		t.Errorf("expected x scale 2, got %f", gs.CTM.XScale())
	}
}

// TestColorConstructors tests color space tagging
func TestColorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		color      Color
		space      string
		components int
	}{
		{"gray", DeviceGray(0.5), "DeviceGray", 1},
		{"rgb", DeviceRGB(1, 0, 0), "DeviceRGB", 3},
		{"cmyk", DeviceCMYK(0, 0, 0, 1), "DeviceCMYK", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.color.Space != tt.space {
				t.Errorf("expected space %s, got %s", tt.space, tt.color.Space)
			}
			if len(tt.color.Components) != tt.components {
				t.Errorf("expected %d components, got %d", tt.components, len(tt.color.Components))
			}
		})
	}
}
