// Package contentstream tokenizes PDF content streams.
//
// A content stream is a postfix language: operands precede the operator
// that consumes them. The Tokenizer yields that sequence lazily, one token
// at a time, so the interpreter can accumulate operands and dispatch each
// operator as it arrives:
//
//	tok := contentstream.NewTokenizer(data)
//	for {
//	    token, err := tok.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// Operands cover the object types content streams can contain: numbers,
// literal and hex strings, names, arrays, dictionaries, booleans, and
// null. Comments are skipped. Inline images (BI ... ID ... EI) are
// consumed as a unit so their binary payload never confuses the parser.
//
// With force parsing enabled (WithForceParsing), malformed runs are
// skipped to the next token boundary instead of ending tokenization, and
// Skipped reports how many runs were dropped.
package contentstream
