// Package hocr renders positioned text as hOCR and reads it back.
//
// hOCR is the de-facto interchange format for positioned words (it is
// what OCR engines emit), which makes it a convenient export target for
// interpreter output: each extracted fragment becomes an ocrx_word with
// its bounding box. Parse reverses the mapping using the
// golang.org/x/net/html tokenizer, so round-trip tests and downstream
// consumers need no separate parser.
package hocr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pdfstream/model"
	"github.com/tsawler/pdfstream/text"
)

// Word is one positioned word on an hOCR page. The bounding box is in
// hOCR image coordinates: origin top-left, y growing downward.
type Word struct {
	Text string
	BBox model.BBox
}

// Page is one hOCR page
type Page struct {
	Width  float64
	Height float64
	Words  []Word
}

// FromFragments converts extracted fragments to an hOCR page, flipping
// the PDF bottom-left origin to the hOCR top-left origin
func FromFragments(fragments []text.Fragment, pageWidth, pageHeight float64) Page {
	p := Page{Width: pageWidth, Height: pageHeight}
	for _, frag := range fragments {
		if strings.TrimSpace(frag.Text) == "" {
			continue
		}
		height := frag.Height
		if height == 0 {
			height = frag.FontSize
		}
		p.Words = append(p.Words, Word{
			Text: frag.Text,
			BBox: model.BBox{
				X:      frag.X,
				Y:      pageHeight - frag.Y - height,
				Width:  frag.EndX - frag.X,
				Height: height,
			},
		})
	}
	return p
}

// Render writes the page as an hOCR document
func Render(p Page) string {
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\"/>\n")
	sb.WriteString("<meta name=\"ocr-system\" content=\"pdfstream\"/>\n")
	sb.WriteString("<meta name=\"ocr-capabilities\" content=\"ocr_page ocrx_word\"/>\n")
	sb.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&sb, "<div class=\"ocr_page\" title=\"bbox 0 0 %d %d\">\n",
		int(p.Width), int(p.Height))

	for _, w := range p.Words {
		fmt.Fprintf(&sb, "<span class=\"ocrx_word\" title=\"bbox %d %d %d %d\">%s</span>\n",
			int(w.BBox.X), int(w.BBox.Y),
			int(w.BBox.X+w.BBox.Width), int(w.BBox.Y+w.BBox.Height),
			html.EscapeString(w.Text))
	}

	sb.WriteString("</div>\n</body>\n</html>\n")
	return sb.String()
}

// Parse reads an hOCR document back into a Page
func Parse(r io.Reader) (Page, error) {
	var page Page

	tok := html.NewTokenizer(r)
	var pending *Word

	for {
		switch tok.Next() {
		case html.ErrorToken:
			if tok.Err() == io.EOF {
				return page, nil
			}
			return page, fmt.Errorf("parse hOCR: %w", tok.Err())

		case html.StartTagToken:
			token := tok.Token()
			class, title := attrValues(token)
			switch {
			case strings.Contains(class, "ocr_page"):
				if bbox, ok := parseBBox(title); ok {
					page.Width = bbox.Width
					page.Height = bbox.Height
				}
			case strings.Contains(class, "ocrx_word"):
				w := Word{}
				if bbox, ok := parseBBox(title); ok {
					w.BBox = bbox
				}
				pending = &w
			}

		case html.TextToken:
			if pending != nil {
				pending.Text += strings.TrimSpace(string(tok.Text()))
			}

		case html.EndTagToken:
			if pending != nil {
				page.Words = append(page.Words, *pending)
				pending = nil
			}
		}
	}
}

// attrValues pulls the class and title attributes from a token
func attrValues(token html.Token) (class, title string) {
	for _, attr := range token.Attr {
		switch attr.Key {
		case "class":
			class = attr.Val
		case "title":
			title = attr.Val
		}
	}
	return class, title
}

// parseBBox reads "bbox x0 y0 x1 y1" from an hOCR title attribute
func parseBBox(title string) (model.BBox, bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		var v [4]float64
		for i := 0; i < 4; i++ {
			parsed, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return model.BBox{}, false
			}
			v[i] = parsed
		}
		return model.BBox{X: v[0], Y: v[1], Width: v[2] - v[0], Height: v[3] - v[1]}, true
	}
	return model.BBox{}, false
}
