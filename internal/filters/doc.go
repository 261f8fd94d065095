// Package filters provides PDF stream decompression filters.
//
// PDF streams can be compressed with a chain of filters named in the
// stream dictionary. This package implements the decoders the interpreter
// needs when unwrapping content streams and image XObjects:
//
//   - FlateDecode (zlib/deflate), with TIFF and PNG predictors
//   - ASCIIHexDecode and ASCII85Decode
//   - RunLengthDecode
//   - CCITTFaxDecode (Group 3/4 fax, via golang.org/x/image/ccitt)
//
// Filters that take parameters accept a Params map mirroring the PDF
// DecodeParms dictionary:
//
//	params := filters.Params{
//	    "Predictor": 12,
//	    "Columns":   100,
//	    "Colors":    3,
//	}
//	decoded, err := filters.FlateDecode(data, params)
package filters
