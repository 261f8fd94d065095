// Package pdfstream interprets PDF content streams and extracts
// positioned text.
//
// The heavy lifting lives in the interpreter package; this package wires
// the engine, the font loader, and the text sink together for the common
// case — one decoded content stream plus its resource dictionary in, text
// out:
//
//	text, warnings, err := pdfstream.ExtractText(content, resources)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println(pdfstream.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := pdfstream.ExtractText(content, resources,
//	    pdfstream.WithPageSize(612, 792),
//	    pdfstream.WithResolver(resolve),
//	    pdfstream.WithForceParsing(true))
//
// For anything beyond plain text — custom sinks, custom operator
// handlers, image observation, path geometry — use the interpreter
// package directly.
package pdfstream

import (
	"strings"

	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/interpreter"
	"github.com/tsawler/pdfstream/model"
	"github.com/tsawler/pdfstream/text"
)

// ExtractText interprets a content stream and returns its assembled text.
// Warnings report non-fatal conditions (unknown operators, missing fonts,
// recovered parse errors); the error is reserved for failures that ended
// interpretation.
func ExtractText(content []byte, resources core.Dict, opts ...Option) (string, []interpreter.Warning, error) {
	sink, warnings, err := run(content, resources, opts...)
	if err != nil {
		return "", warnings, err
	}
	return sink.Text(), warnings, nil
}

// ExtractFragments interprets a content stream and returns the positioned
// glyph fragments, for callers that do their own layout analysis
func ExtractFragments(content []byte, resources core.Dict, opts ...Option) ([]text.Fragment, []interpreter.Warning, error) {
	sink, warnings, err := run(content, resources, opts...)
	if err != nil {
		return nil, warnings, err
	}
	return sink.Fragments(), warnings, nil
}

// run builds an engine around a text sink and interprets the stream
func run(content []byte, resources core.Dict, opts ...Option) (*text.Extractor, []interpreter.Warning, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	sink := text.NewExtractor()

	engineOpts := []interpreter.Option{
		interpreter.WithSink(sink),
		interpreter.WithForceParsing(options.forceParsing),
	}
	if options.imageObserver != nil {
		engineOpts = append(engineOpts, interpreter.WithImageObserver(options.imageObserver))
	}

	var engine *interpreter.Engine
	if options.operatorConfig != nil {
		var err error
		engine, err = interpreter.NewFromConfig(options.operatorConfig, engineOpts...)
		if err != nil {
			return nil, nil, err
		}
	} else {
		engine = interpreter.New(engineOpts...)
	}

	res := interpreter.NewResources(resources, options.resolve)
	stream := core.NewStream(nil, content)

	err := engine.ProcessStream(res, stream, options.pageSize, options.rotation)
	return sink, engine.Warnings(), err
}

// FormatWarnings renders warnings one per line for logging
func FormatWarnings(warnings []interpreter.Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}

// Must panics on error, for scripts and tests where error handling would
// be cumbersome
func Must[T any](val T, _ []interpreter.Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// letterSize is the default page size (US Letter in points)
var letterSize = model.NewBBox(0, 0, 612, 792)
