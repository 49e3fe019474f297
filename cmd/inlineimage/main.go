// Command inlineimage lists the inline images of a PDF content stream and
// optionally writes their raw sample data to files.
//
// Usage:
//
//	inlineimage [-flate] [-colorspaces '<< /CS0 /DeviceRGB >>'] [-max-size n] [-out dir] file
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tsawler/pdfinline/contentstream"
	"github.com/tsawler/pdfinline/core"
	"github.com/tsawler/pdfinline/inlineimage"
	"github.com/tsawler/pdfinline/internal/filters"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("inlineimage: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

// run executes the command with args and writes the listing to w.
func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("inlineimage", flag.ContinueOnError)
	compressed := fs.Bool("flate", false, "the content stream is FlateDecode compressed")
	csText := fs.String("colorspaces", "", "the page /ColorSpace resource dictionary")
	maxSize := fs.Int("max-size", 0, "maximum sample data per image in bytes (0 for no limit)")
	outDir := fs.String("out", "", "directory to write raw sample data to")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: inlineimage [flags] file\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one content stream file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if *compressed {
		data, err = filters.FlateDecode(data, nil)
		if err != nil {
			return fmt.Errorf("decompressing %s: %w", fs.Arg(0), err)
		}
	}

	colorSpaces, err := parseColorSpaces(*csText)
	if err != nil {
		return err
	}

	opts := inlineimage.DefaultOptions()
	opts.MaxDataSize = *maxSize

	parser := contentstream.NewParser(data)
	parser.SetColorSpaces(colorSpaces)
	parser.SetInlineImageOptions(opts)

	ops, err := parser.Parse()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", fs.Arg(0), err)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return err
		}
	}

	count := 0
	for _, op := range ops {
		img, ok := op.InlineImage()
		if !ok {
			continue
		}

		fmt.Fprintln(w, describe(count, img))

		if *outDir != "" {
			name := filepath.Join(*outDir, fmt.Sprintf("inline-%d.bin", count))
			if err := os.WriteFile(name, img.Data, 0o644); err != nil {
				return err
			}
			log.Printf("wrote %s", name)
		}
		count++
	}

	if count == 0 {
		fmt.Fprintln(w, "no inline images")
	}
	return nil
}

// parseColorSpaces parses a dictionary written in content stream syntax.
func parseColorSpaces(text string) (core.Dict, error) {
	if text == "" {
		return nil, nil
	}

	obj, err := contentstream.NewParser([]byte(text)).ReadObject()
	if err != nil {
		return nil, fmt.Errorf("-colorspaces: %w", err)
	}
	dict, ok := obj.(core.Dict)
	if !ok {
		return nil, fmt.Errorf("-colorspaces: expected a dictionary, got %s", obj.Type())
	}
	return dict, nil
}

// describe formats one line of the listing.
func describe(index int, img *core.Stream) string {
	width, _ := img.Dict.GetNumber("Width")
	height, _ := img.Dict.GetNumber("Height")

	line := fmt.Sprintf("%d: %dx%d colorspace=%s filter=%s %d bytes",
		index, width, height, entry(img.Dict, "ColorSpace"), entry(img.Dict, "Filter"), len(img.Data))

	decoded, err := img.Decode()
	if err != nil {
		return line + fmt.Sprintf(", decode failed: %v", err)
	}
	return line + fmt.Sprintf(", %d bytes decoded", len(decoded))
}

func entry(dict core.Dict, key string) string {
	if obj := dict.Get(key); obj != nil {
		return obj.String()
	}
	return "-"
}
