package core

import (
	"fmt"

	"github.com/tsawler/pdfstream/internal/filters"
)

// Stream represents a PDF stream object: a dictionary plus raw data
type Stream struct {
	Dict Dict
	Data []byte

	decoded []byte
}

func (s *Stream) Type() ObjectType { return ObjStream }
func (s *Stream) String() string {
	return fmt.Sprintf("stream %s (%d bytes)", s.Dict.String(), len(s.Data))
}

// NewStream creates a stream from a dictionary and raw data
func NewStream(dict Dict, data []byte) *Stream {
	if dict == nil {
		dict = make(Dict)
	}
	return &Stream{Dict: dict, Data: data}
}

// Decode decodes the stream data according to the Filter entry in the
// stream dictionary and caches the result. Filter chains are applied in
// order; DecodeParms may be a single dictionary or a parallel array.
func (s *Stream) Decode() ([]byte, error) {
	if s.decoded != nil {
		return s.decoded, nil
	}

	filterObj := s.Dict.Get("Filter")
	if filterObj == nil {
		s.decoded = s.Data
		return s.decoded, nil
	}

	paramsObj := s.Dict.Get("DecodeParms")
	if paramsObj == nil {
		paramsObj = s.Dict.Get("DP")
	}

	var chain []Name
	switch v := filterObj.(type) {
	case Name:
		chain = []Name{v}
	case Array:
		for i, f := range v {
			name, ok := f.(Name)
			if !ok {
				return nil, fmt.Errorf("filter %d is not a name: %T", i, f)
			}
			chain = append(chain, name)
		}
	default:
		return nil, fmt.Errorf("invalid Filter type: %T", filterObj)
	}

	data := s.Data
	for i, name := range chain {
		params := paramsForFilter(paramsObj, i)

		var err error
		data, err = applyFilter(data, string(name), params)
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s) failed: %w", i, name, err)
		}
	}

	s.decoded = data
	return s.decoded, nil
}

// paramsForFilter extracts the decode parameters for the i-th filter in a
// chain. A single dictionary applies to every filter; an array is indexed.
func paramsForFilter(paramsObj Object, i int) filters.Params {
	switch v := paramsObj.(type) {
	case Dict:
		return dictToParams(v)
	case Array:
		if i < len(v) {
			if dict, ok := v[i].(Dict); ok {
				return dictToParams(dict)
			}
		}
	}
	return nil
}

// applyFilter applies a single named decompression filter. Both the full
// PDF names and the inline-image abbreviations are accepted.
func applyFilter(data []byte, filterName string, params filters.Params) ([]byte, error) {
	switch filterName {
	case "FlateDecode", "Fl":
		return filters.FlateDecode(data, params)

	case "ASCIIHexDecode", "AHx":
		return filters.ASCIIHexDecode(data)

	case "ASCII85Decode", "A85":
		return filters.ASCII85Decode(data)

	case "RunLengthDecode", "RL":
		return filters.RunLengthDecode(data)

	case "CCITTFaxDecode", "CCF":
		return filters.CCITTFaxDecode(data, params)

	case "DCTDecode", "DCT", "JPXDecode":
		// compressed image payloads pass through; image consumers decode
		return data, nil

	case "LZWDecode", "LZW":
		return nil, fmt.Errorf("LZWDecode not supported")

	case "JBIG2Decode":
		return nil, fmt.Errorf("JBIG2Decode not supported")

	case "Crypt":
		return nil, fmt.Errorf("Crypt filter not supported")

	default:
		return nil, fmt.Errorf("unknown filter: %s", filterName)
	}
}

// dictToParams converts a PDF parameter dictionary into the filter
// package's parameter map
func dictToParams(dict Dict) filters.Params {
	if dict == nil {
		return nil
	}
	params := make(filters.Params, len(dict))
	for key, val := range dict {
		switch v := val.(type) {
		case Int:
			params[key] = int(v)
		case Real:
			params[key] = float64(v)
		case Bool:
			params[key] = bool(v)
		case Name:
			params[key] = string(v)
		}
	}
	return params
}
