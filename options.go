package pdfstream

import (
	"github.com/tsawler/pdfstream/interpreter"
	"github.com/tsawler/pdfstream/model"
	"github.com/tsawler/pdfstream/resolver"
)

// extractOptions holds configuration for one extraction run
type extractOptions struct {
	pageSize       model.BBox
	rotation       int
	resolve        resolver.Func
	forceParsing   bool
	operatorConfig interpreter.Config
	imageObserver  interpreter.ImageObserver
}

// defaultOptions returns the defaults: US Letter, no rotation, strict
// parsing
func defaultOptions() extractOptions {
	return extractOptions{
		pageSize: letterSize,
	}
}

// Option configures an extraction run
type Option func(*extractOptions)

// WithPageSize sets the page media box size in points
func WithPageSize(width, height float64) Option {
	return func(o *extractOptions) {
		o.pageSize = model.NewBBox(0, 0, width, height)
	}
}

// WithRotation sets the page rotation in degrees
func WithRotation(degrees int) Option {
	return func(o *extractOptions) {
		o.rotation = degrees
	}
}

// WithResolver supplies the indirect-reference resolver from the
// document parser. Without one, indirect references resolve to null.
func WithResolver(fn resolver.Func) Option {
	return func(o *extractOptions) {
		o.resolve = fn
	}
}

// WithForceParsing makes the tokenizer skip malformed runs instead of
// failing the page
func WithForceParsing(force bool) Option {
	return func(o *extractOptions) {
		o.forceParsing = force
	}
}

// WithOperatorConfig replaces the default operator bindings. Unknown
// handler identifiers make extraction fail up front.
func WithOperatorConfig(cfg interpreter.Config) Option {
	return func(o *extractOptions) {
		o.operatorConfig = cfg
	}
}

// WithImageObserver reports image XObject invocations, e.g. to collect
// images for an OCR fallback on scanned pages
func WithImageObserver(obs interpreter.ImageObserver) Option {
	return func(o *extractOptions) {
		o.imageObserver = obs
	}
}
