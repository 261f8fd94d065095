// Package text assembles extracted text from interpreter emissions.
//
// Extractor implements interpreter.Sink: every glyph the engine shows
// arrives as a TextPosition and is kept as a positioned Fragment. Text()
// then reconstructs reading order — lines grouped by baseline, RTL lines
// reversed, word breaks detected from the raw inter-glyph gaps the
// engine preserves by excluding character and word spacing from each
// glyph's end position.
package text
