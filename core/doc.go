// Package core provides the PDF object model consumed by the content
// stream interpreter: the primitive object types (null, boolean, integer,
// real, string, name), the container types (array, dictionary, stream),
// and indirect references.
//
// Objects arrive from a content stream tokenizer or from the document
// parser that supplies resource dictionaries; this package does not read
// files itself.
//
// # Streams
//
// Stream couples a dictionary with raw data and decodes it on demand:
//
//	data, err := stream.Decode()
//
// Decode applies the Filter chain named in the stream dictionary
// (FlateDecode with predictors, ASCIIHexDecode, ASCII85Decode,
// RunLengthDecode, CCITTFaxDecode) and caches the result. Image-only
// filters (DCTDecode, JPXDecode) pass the payload through untouched for
// image consumers to handle.
package core
