// Package font provides the font capability the content stream
// interpreter consumes: decoding character codes to Unicode and supplying
// glyph metrics.
//
// # Font types
//
// Simple fonts (Type1, MMType1, TrueType) use single-byte codes with a
// /Widths array, a byte encoding (WinAnsi, MacRoman, Standard, plus
// /Differences), and optionally a ToUnicode CMap. Unembedded standard-14
// fonts fall back to built-in metric tables.
//
// Composite (Type0) fonts use two-byte Identity codes keyed into /W width
// ranges; Unicode comes from the ToUnicode CMap. Vertical writing
// (Identity-V) is detected and surfaced but vertical metrics are not
// computed.
//
// Type3 fonts define glyphs as content streams. They carry their own
// /FontMatrix, so their widths are in the glyph space that matrix defines
// rather than thousandths. CharProc exposes the glyph procedure streams
// so an interpreter can execute them as nested sub-streams.
//
// # Loading
//
//	f, err := font.Load("F1", fontDict, resolve)
//
// dispatches on /Subtype. Byte encodings are backed by
// golang.org/x/text/encoding/charmap and all decoded text is normalized
// to NFC.
package font
