package inlineimage

import (
	"fmt"

	"github.com/tsawler/pdfinline/core"
)

// bytesPerRow returns the unfiltered size of one scanline.
func bytesPerRow(dict, colorSpaces core.Dict, maxDepth int) (int, error) {
	width, ok := dict.GetNumber("Width")
	if !ok {
		return 0, newError(opRowSize, fmt.Errorf("%w: Width", ErrMissingRequiredField))
	}
	if width < 0 {
		return 0, newError(opRowSize, fmt.Errorf("%w: negative Width %d", ErrMalformedInlineImage, width))
	}

	bpc, ok := dict.GetNumber("BitsPerComponent")
	if !ok {
		bpc = 1
	}
	if bpc < 0 {
		return 0, newError(opRowSize, fmt.Errorf("%w: negative BitsPerComponent %d", ErrMalformedInlineImage, bpc))
	}

	components := 1
	switch cs := dict.Get("ColorSpace").(type) {
	case core.Name:
		n, err := componentsPerPixel(cs, colorSpaces, 0, maxDepth)
		if err != nil {
			return 0, newError(opRowSize, err)
		}
		components = n
	case core.Array:
		if !isIndexedArray(cs) {
			return 0, newError(opRowSize, fmt.Errorf("%w: %s", ErrUnknownColorSpace, cs))
		}
	}

	bits, ok := mulRowBits(width, bpc, components)
	if !ok {
		return 0, newError(opRowSize,
			fmt.Errorf("%w: row of %d x %d x %d bits", ErrDataTooLarge, width, bpc, components))
	}
	return (bits + 7) / 8, nil
}

// componentsPerPixel resolves name to its number of color components.
// Names that are keys of colorSpaces are followed until a device color
// space or an Indexed array is reached.
func componentsPerPixel(name core.Name, colorSpaces core.Dict, depth, maxDepth int) (int, error) {
	if depth > maxDepth {
		return 0, fmt.Errorf("%w: %s nested more than %d deep", ErrColorSpaceCycle, name, maxDepth)
	}

	switch name {
	case "":
		return 1, nil
	case "DeviceGray":
		return 1, nil
	case "DeviceRGB":
		return 3, nil
	case "DeviceCMYK":
		return 4, nil
	}

	switch def := colorSpaces.Get(string(name)).(type) {
	case core.Array:
		if family, ok := def.GetName(0); ok && family == "Indexed" {
			return 1, nil
		}
	case core.Name:
		return componentsPerPixel(def, colorSpaces, depth+1, maxDepth)
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownColorSpace, name)
}

// colorSpaceIsKnown reports whether the number of components of the image
// can be determined without knowing its filters.
func colorSpaceIsKnown(dict, colorSpaces core.Dict) bool {
	switch cs := dict.Get("ColorSpace").(type) {
	case nil:
		return true
	case core.Name:
		switch cs {
		case "DeviceGray", "DeviceRGB", "DeviceCMYK":
			return true
		}
		return colorSpaces.Has(string(cs))
	case core.Array:
		return isIndexedArray(cs)
	}
	return false
}

// maxRowBits bounds the size of a single scanline.
const maxRowBits = 1<<31 - 1

// mulRowBits multiplies the row factors, reporting false if the product
// exceeds maxRowBits.
func mulRowBits(factors ...int) (int, bool) {
	product := 1
	for _, f := range factors {
		if f == 0 {
			return 0, true
		}
		if product > maxRowBits/f {
			return 0, false
		}
		product *= f
	}
	return product, true
}
