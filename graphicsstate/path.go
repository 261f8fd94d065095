package graphicsstate

import (
	"math"

	"github.com/tsawler/pdfstream/model"
)

// PathSegmentType defines the type of path segment
type PathSegmentType int

const (
	// PathMoveTo starts a new subpath
	PathMoveTo PathSegmentType = iota
	// PathLineTo draws a line to a point
	PathLineTo
	// PathCurveTo draws a cubic Bézier curve
	PathCurveTo
	// PathClosePath closes the current subpath
	PathClosePath
)

// PathSegment is a single segment of a path. MoveTo and LineTo carry one
// point; CurveTo carries two control points and the end point.
type PathSegment struct {
	Type   PathSegmentType
	Points []model.Point
}

// Path is a graphics path under construction, in user space
type Path struct {
	Segments []PathSegment

	CurrentPoint    model.Point
	SubpathStart    model.Point
	HasCurrentPoint bool
}

// NewPath creates an empty path
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y) (m operator)
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Type: PathMoveTo, Points: []model.Point{pt}})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line from the current point to (x, y) (l operator)
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x, y)
		return
	}
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{Type: PathLineTo, Points: []model.Point{pt}})
	p.CurrentPoint = pt
}

// CurveTo appends a cubic Bézier curve (c operator)
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x1, y1)
	}
	p.Segments = append(p.Segments, PathSegment{
		Type: PathCurveTo,
		Points: []model.Point{
			{X: x1, Y: y1},
			{X: x2, Y: y2},
			{X: x3, Y: y3},
		},
	})
	p.CurrentPoint = model.Point{X: x3, Y: y3}
}

// CurveToV appends a curve whose first control point is the current point
// (v operator)
func (p *Path) CurveToV(x2, y2, x3, y3 float64) {
	if !p.HasCurrentPoint {
		return
	}
	p.CurveTo(p.CurrentPoint.X, p.CurrentPoint.Y, x2, y2, x3, y3)
}

// CurveToY appends a curve whose second control point is the end point
// (y operator)
func (p *Path) CurveToY(x1, y1, x3, y3 float64) {
	if !p.HasCurrentPoint {
		return
	}
	p.CurveTo(x1, y1, x3, y3, x3, y3)
}

// ClosePath closes the current subpath (h operator)
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}
	p.Segments = append(p.Segments, PathSegment{Type: PathClosePath})
	p.CurrentPoint = p.SubpathStart
}

// Rectangle appends a rectangle as a complete subpath (re operator)
func (p *Path) Rectangle(x, y, width, height float64) {
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.ClosePath()
}

// Clear resets the path
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.HasCurrentPoint = false
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Line is a stroked or rectangle-derived line in device space, kept so
// downstream consumers can detect table rules and separators
type Line struct {
	Start model.Point
	End   model.Point

	Width float64
	Color Color

	IsHorizontal bool
	IsVertical   bool
}

// Rect is a painted rectangle in device space
type Rect struct {
	BBox model.BBox

	StrokeWidth float64
	StrokeColor Color
	FillColor   Color
	IsFilled    bool
	IsStroked   bool
}

// PathRecorder accumulates painted geometry across a whole stream. Path
// painting operators hand it the finished path together with the state
// that painted it.
type PathRecorder struct {
	Lines []Line
	Rects []Rect

	// Tolerance for horizontal/vertical classification (in points)
	AngleTolerance float64
}

// NewPathRecorder creates a recorder with the default classification
// tolerance
func NewPathRecorder() *PathRecorder {
	return &PathRecorder{AngleTolerance: 0.5}
}

// Paint records the painted path, transformed to device space by the
// state's CTM. Filled or stroked rectangles are kept as rectangles;
// other stroked subpaths decompose into line segments.
func (r *PathRecorder) Paint(path *Path, gs *GraphicsState, stroked, filled bool) {
	if path.IsEmpty() {
		return
	}

	if corners, ok := rectangleCorners(path); ok {
		transformed := make([]model.Point, len(corners))
		for i, c := range corners {
			transformed[i] = gs.CTM.Transform(c)
		}
		rect := Rect{
			BBox:      boundingBox(transformed),
			IsStroked: stroked,
			IsFilled:  filled,
		}
		if stroked {
			rect.StrokeWidth = gs.LineWidth
			rect.StrokeColor = gs.StrokeColor.clone()
		}
		if filled {
			rect.FillColor = gs.FillColor.clone()
		}
		r.Rects = append(r.Rects, rect)
		return
	}

	if stroked {
		r.recordSegments(path, gs)
	}
}

// recordSegments decomposes the path into device-space line segments.
// Curves are approximated by their chord, which is enough for rule and
// separator detection.
func (r *PathRecorder) recordSegments(path *Path, gs *GraphicsState) {
	var current, subpathStart model.Point

	for _, seg := range path.Segments {
		switch seg.Type {
		case PathMoveTo:
			current = seg.Points[0]
			subpathStart = current

		case PathLineTo:
			r.Lines = append(r.Lines, r.makeLine(current, seg.Points[0], gs))
			current = seg.Points[0]

		case PathCurveTo:
			end := seg.Points[2]
			r.Lines = append(r.Lines, r.makeLine(current, end, gs))
			current = end

		case PathClosePath:
			if !pointsEqual(current, subpathStart, 0.1) {
				r.Lines = append(r.Lines, r.makeLine(current, subpathStart, gs))
			}
			current = subpathStart
		}
	}
}

// makeLine builds a device-space line with orientation classification
func (r *PathRecorder) makeLine(start, end model.Point, gs *GraphicsState) Line {
	s := gs.CTM.Transform(start)
	e := gs.CTM.Transform(end)

	return Line{
		Start:        s,
		End:          e,
		Width:        gs.LineWidth,
		Color:        gs.StrokeColor.clone(),
		IsHorizontal: math.Abs(e.Y-s.Y) < r.AngleTolerance,
		IsVertical:   math.Abs(e.X-s.X) < r.AngleTolerance,
	}
}

// Clear drops all recorded geometry
func (r *PathRecorder) Clear() {
	r.Lines = r.Lines[:0]
	r.Rects = r.Rects[:0]
}

// rectangleCorners reports whether the path is a single rectangular
// subpath and returns its four corners in user space
func rectangleCorners(path *Path) ([]model.Point, bool) {
	segments := path.Segments
	if len(segments) < 4 || segments[0].Type != PathMoveTo {
		return nil, false
	}

	corners := []model.Point{segments[0].Points[0]}
	for _, seg := range segments[1:] {
		switch seg.Type {
		case PathLineTo:
			corners = append(corners, seg.Points[0])
		case PathClosePath:
			// completes the rectangle
		default:
			return nil, false
		}
	}

	if len(corners) == 5 && pointsEqual(corners[0], corners[4], 0.1) {
		corners = corners[:4]
	}
	if len(corners) != 4 {
		return nil, false
	}

	// right angles at every corner
	for i := 0; i < 4; i++ {
		p0 := corners[i]
		p1 := corners[(i+1)%4]
		p2 := corners[(i+2)%4]

		v1x, v1y := p1.X-p0.X, p1.Y-p0.Y
		v2x, v2y := p2.X-p1.X, p2.Y-p1.Y

		len1 := math.Sqrt(v1x*v1x + v1y*v1y)
		len2 := math.Sqrt(v2x*v2x + v2y*v2y)
		if len1 < 1e-6 || len2 < 1e-6 {
			continue
		}
		cos := (v1x*v2x + v1y*v2y) / (len1 * len2)
		if math.Abs(cos) > 0.1 {
			return nil, false
		}
	}

	return corners, true
}

// pointsEqual checks if two points are approximately equal
func pointsEqual(a, b model.Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

// boundingBox calculates the bounding box of a set of points
func boundingBox(points []model.Point) model.BBox {
	if len(points) == 0 {
		return model.BBox{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return model.BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
