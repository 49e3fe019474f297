package core

import (
	"fmt"

	"github.com/tsawler/pdfinline/internal/filters"
)

// Decode decodes the stream data according to the Filter(s) specified in the
// stream dictionary, using the default filter handlers.
func (s *Stream) Decode() ([]byte, error) {
	return DecodeBytes(s.Data, s.Dict, nil)
}

// DecodeBytes applies the filter chain described by dict (its Filter and
// DecodeParms entries) to data. Handlers in overrides replace the default
// handler registered under the same filter name; this lets callers swap in
// a pass-through for filters they cannot or do not want to decode.
//
// Filter names must be in canonical form (FlateDecode, not Fl).
func DecodeBytes(data []byte, dict Dict, overrides filters.Registry) ([]byte, error) {
	filterObj := dict.Get("Filter")
	if filterObj == nil {
		return data, nil
	}

	handlers := filters.DefaultRegistry().With(overrides)
	paramsObj := dict.Get("DecodeParms")

	switch f := filterObj.(type) {
	case Name:
		return decodeWithFilter(handlers, data, string(f), paramsObjToDict(paramsObj))

	case Array:
		for i, filter := range f {
			filterName, ok := filter.(Name)
			if !ok {
				return nil, fmt.Errorf("filter %d is not a name: %T", i, filter)
			}

			// DecodeParms is either one entry per filter or a single
			// dictionary shared by the whole chain.
			var params Dict
			if paramsArray, ok := paramsObj.(Array); ok {
				if i < len(paramsArray) {
					params = paramsObjToDict(paramsArray[i])
				}
			} else {
				params = paramsObjToDict(paramsObj)
			}

			var err error
			data, err = decodeWithFilter(handlers, data, string(filterName), params)
			if err != nil {
				return nil, fmt.Errorf("filter %d (%s) failed: %w", i, filterName, err)
			}
		}
		return data, nil
	}

	return nil, fmt.Errorf("invalid Filter type: %T", filterObj)
}

// decodeWithFilter applies a single filter looked up in handlers.
func decodeWithFilter(handlers filters.Registry, data []byte, filterName string, params Dict) ([]byte, error) {
	h, ok := handlers[filterName]
	if !ok {
		return nil, fmt.Errorf("unsupported filter: %s", filterName)
	}
	return h(data, dictToParams(params))
}

// paramsObjToDict converts a DecodeParms object to a Dict.
// Returns nil if the object is nil, Null, or not a Dict.
func paramsObjToDict(obj Object) Dict {
	dict, _ := obj.(Dict)
	return dict
}

// dictToParams converts a core.Dict to filters.Params, translating PDF object
// types to Go primitive types (Int->int, Real->float64, Bool->bool, etc.).
func dictToParams(dict Dict) filters.Params {
	if dict == nil {
		return nil
	}

	params := make(filters.Params)
	for k, v := range dict {
		switch obj := v.(type) {
		case Int:
			params[k] = int(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case String:
			params[k] = string(obj)
		case Name:
			params[k] = string(obj)
		default:
			params[k] = v
		}
	}
	return params
}
