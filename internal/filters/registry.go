package filters

// Handler decodes data encoded with one PDF filter.
type Handler func(data []byte, params Params) ([]byte, error)

// Registry maps canonical filter names to their handlers.
type Registry map[string]Handler

// DefaultRegistry returns a fresh registry holding every filter this
// package implements. DCTDecode and JPXDecode are image codecs whose
// payload is handed to the caller as-is, so they are registered as
// Passthrough. JBIG2Decode and Crypt are not registered.
//
// The returned map belongs to the caller and may be modified.
func DefaultRegistry() Registry {
	return Registry{
		"FlateDecode":     FlateDecode,
		"LZWDecode":       LZWDecode,
		"ASCIIHexDecode":  func(data []byte, _ Params) ([]byte, error) { return ASCIIHexDecode(data) },
		"ASCII85Decode":   func(data []byte, _ Params) ([]byte, error) { return ASCII85Decode(data) },
		"RunLengthDecode": func(data []byte, _ Params) ([]byte, error) { return RunLengthDecode(data) },
		"CCITTFaxDecode":  CCITTFaxDecode,
		"DCTDecode":       Passthrough,
		"JPXDecode":       Passthrough,
	}
}

// With returns a copy of r in which every entry of overrides replaces or
// adds to the handler of the same name. Neither r nor overrides is modified.
func (r Registry) With(overrides Registry) Registry {
	out := make(Registry, len(r)+len(overrides))
	for name, h := range r {
		out[name] = h
	}
	for name, h := range overrides {
		out[name] = h
	}
	return out
}

// Passthrough returns data unchanged. It stands in for filters whose
// encoded form cannot be checked without a full codec.
func Passthrough(data []byte, _ Params) ([]byte, error) {
	return data, nil
}
