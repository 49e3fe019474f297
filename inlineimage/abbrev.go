package inlineimage

import "github.com/tsawler/pdfinline/core"

// keyAbbreviations maps inline image dictionary keys to their canonical
// form. Canonical keys map to themselves.
var keyAbbreviations = map[core.Name]core.Name{
	"BPC": "BitsPerComponent",
	"CS":  "ColorSpace",
	"D":   "Decode",
	"DP":  "DecodeParms",
	"F":   "Filter",
	"H":   "Height",
	"IM":  "ImageMask",
	"I":   "Interpolate",
	"W":   "Width",

	"BitsPerComponent": "BitsPerComponent",
	"ColorSpace":       "ColorSpace",
	"Decode":           "Decode",
	"DecodeParms":      "DecodeParms",
	"Filter":           "Filter",
	"Height":           "Height",
	"ImageMask":        "ImageMask",
	"Interpolate":      "Interpolate",
	"Width":            "Width",
	"Intent":           "Intent",
}

var colorSpaceAbbreviations = map[core.Name]core.Name{
	"G":    "DeviceGray",
	"RGB":  "DeviceRGB",
	"CMYK": "DeviceCMYK",
	"I":    "Indexed",
}

var filterAbbreviations = map[core.Name]core.Name{
	"AHx": "ASCIIHexDecode",
	"A85": "ASCII85Decode",
	"LZW": "LZWDecode",
	"Fl":  "FlateDecode",
	"RL":  "RunLengthDecode",
	"CCF": "CCITTFaxDecode",
	"DCT": "DCTDecode",
}

// ExpandKey returns the canonical form of an inline image dictionary key.
// Unknown keys are returned unchanged.
func ExpandKey(key core.Name) core.Name {
	if canonical, ok := keyAbbreviations[key]; ok {
		return canonical
	}
	return key
}

// ExpandValue returns the canonical form of value stored under the
// canonical key. Filter names (alone or in an array) and ColorSpace names
// are expanded, recursing into nested Filter arrays; an Indexed color space array has its family and base
// expanded. All other values are returned unchanged.
func ExpandValue(key core.Name, value core.Object) core.Object {
	switch key {
	case "Filter":
		switch v := value.(type) {
		case core.Name:
			return expandName(filterAbbreviations, v)
		case core.Array:
			out := make(core.Array, len(v))
			for i, elem := range v {
				out[i] = ExpandValue(key, elem)
			}
			return out
		}
	case "ColorSpace":
		switch v := value.(type) {
		case core.Name:
			return expandName(colorSpaceAbbreviations, v)
		case core.Array:
			return expandIndexed(v)
		}
	}
	return value
}

func expandName(table map[core.Name]core.Name, name core.Name) core.Name {
	if canonical, ok := table[name]; ok {
		return canonical
	}
	return name
}

// expandIndexed expands [/I base hival lookup]. The base may itself be an
// abbreviated device color space.
func expandIndexed(arr core.Array) core.Array {
	family, ok := arr.GetName(0)
	if !ok || expandName(colorSpaceAbbreviations, family) != "Indexed" {
		return arr
	}
	out := make(core.Array, len(arr))
	copy(out, arr)
	out[0] = core.Name("Indexed")
	if base, ok := arr.GetName(1); ok {
		out[1] = expandName(colorSpaceAbbreviations, base)
	}
	return out
}

// isIndexedArray reports whether obj is an expanded inline Indexed color
// space.
func isIndexedArray(obj core.Object) bool {
	arr, ok := obj.(core.Array)
	if !ok {
		return false
	}
	family, ok := arr.GetName(0)
	return ok && family == "Indexed"
}
