package text

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pdfstream/interpreter"
)

// Fragment is one emitted glyph run with its display-space geometry,
// built from the engine's TextPosition records
type Fragment struct {
	Text string

	// Start and end of the glyph in display space. End excludes character
	// and word spacing, so the gap to the next fragment's X is the raw
	// inter-glyph distance.
	X, Y float64
	EndX float64

	// Height is the vertical displacement in display units
	Height float64

	// SpaceWidth is the width of a space in display units for this
	// fragment's font and size
	SpaceWidth float64

	FontSize  float64
	Direction Direction
}

// Extractor assembles extracted text from engine emissions. It implements
// interpreter.Sink; point the engine at it and read Text afterwards:
//
//	ex := text.NewExtractor()
//	engine := interpreter.New(interpreter.WithSink(ex))
//	... process streams ...
//	content := ex.Text()
type Extractor struct {
	fragments []Fragment
}

// NewExtractor creates an empty extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// OnTextPosition records one glyph emission
func (e *Extractor) OnTextPosition(tp interpreter.TextPosition) {
	if tp.Text == "" {
		return
	}
	e.fragments = append(e.fragments, Fragment{
		Text:       tp.Text,
		X:          tp.TextMatrix.XPosition(),
		Y:          tp.TextMatrix.YPosition(),
		EndX:       tp.EndX,
		Height:     tp.VerticalDisplacement,
		SpaceWidth: tp.SpaceWidth,
		FontSize:   tp.FontSize,
		Direction:  DetectDirection(tp.Text),
	})
}

// Fragments returns the raw glyph fragments in emission order
func (e *Extractor) Fragments() []Fragment {
	return e.fragments
}

// Reset drops accumulated fragments, for reuse across pages
func (e *Extractor) Reset() {
	e.fragments = nil
}

// Text assembles the fragments into a string: lines grouped by baseline,
// reading order fixed up for RTL lines, spaces inserted at word breaks,
// and blank lines at paragraph-sized vertical gaps.
func (e *Extractor) Text() string {
	if len(e.fragments) == 0 {
		return ""
	}

	lines := e.groupLines()

	var sb strings.Builder
	for i, line := range lines {
		dir := lineDirection(line)
		ordered := orderForReading(line, dir)

		for j, frag := range ordered {
			sb.WriteString(frag.Text)
			if j+1 < len(ordered) && insertSpace(frag, ordered[j+1], dir) {
				sb.WriteByte(' ')
			}
		}

		if i+1 < len(lines) {
			gap := math.Abs(lines[i+1][0].Y - line[0].Y)
			if height := lineHeight(line); height > 0 && gap > height*1.5 {
				sb.WriteString("\n\n")
			} else {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// groupLines splits fragments into lines on baseline jumps. Fragments
// arrive in show order, which PDF producers keep line-coherent far more
// often than x-coherent.
func (e *Extractor) groupLines() [][]Fragment {
	var lines [][]Fragment
	current := []Fragment{e.fragments[0]}

	for _, frag := range e.fragments[1:] {
		prev := current[len(current)-1]
		tolerance := prev.Height * 0.5
		if tolerance == 0 {
			tolerance = prev.FontSize * 0.5
		}
		if math.Abs(frag.Y-prev.Y) <= tolerance {
			current = append(current, frag)
		} else {
			lines = append(lines, current)
			current = []Fragment{frag}
		}
	}
	return append(lines, current)
}

// lineDirection returns the dominant direction of a line, defaulting LTR
func lineDirection(line []Fragment) Direction {
	ltr, rtl := 0, 0
	for _, frag := range line {
		switch frag.Direction {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// orderForReading sorts a line into reading order: ascending x for LTR,
// descending for RTL
func orderForReading(line []Fragment, dir Direction) []Fragment {
	ordered := make([]Fragment, len(line))
	copy(ordered, line)
	sort.SliceStable(ordered, func(i, j int) bool {
		if dir == RTL {
			return ordered[i].X > ordered[j].X
		}
		return ordered[i].X < ordered[j].X
	})
	return ordered
}

// insertSpace decides whether a word break falls between two adjacent
// fragments. The gap is measured from the spacing-free end of the first
// to the start of the second; a gap of half a space width or more reads
// as a break.
func insertSpace(frag, next Fragment, dir Direction) bool {
	if strings.HasSuffix(frag.Text, " ") || strings.HasPrefix(next.Text, " ") {
		return false
	}

	var gap float64
	if dir == RTL {
		gap = frag.X - next.EndX
	} else {
		gap = next.X - frag.EndX
	}

	if gap < frag.FontSize*0.05 {
		return false
	}

	threshold := frag.SpaceWidth * 0.5
	if threshold == 0 {
		threshold = frag.FontSize * 0.25
	}
	return gap >= threshold
}

// lineHeight returns the tallest extent on a line. Each fragment counts
// as at least its font size tall, which keeps normal leading from reading
// as a paragraph break.
func lineHeight(line []Fragment) float64 {
	h := 0.0
	for _, frag := range line {
		v := frag.Height
		if frag.FontSize > v {
			v = frag.FontSize
		}
		if v > h {
			h = v
		}
	}
	return h
}
