// Command aztec-png renders an Aztec Code symbol as a PNG image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/monich/aztecgo/aztec/encoder"
)

func main() {
	scale := flag.Int("scale", 1, "scale factor")
	border := flag.Int("border", 1, "border around the symbol, in modules")
	correction := flag.Int("correction", 23, "error correction percentage")
	file := flag.String("file", "", "read data from FILE instead of the command line ('-' for stdin)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aztec-png [flags] TEXT PNG\n       aztec-png [flags] -file FILE PNG\n\n")
		fmt.Fprintf(os.Stderr, "Generates an Aztec symbol as a PNG file. PNG may be \"-\" for stdout.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *scale < 1 {
		fmt.Fprintln(os.Stderr, "aztec-png: scale must be at least 1")
		os.Exit(2)
	}
	if *border < 0 {
		fmt.Fprintln(os.Stderr, "aztec-png: border must not be negative")
		os.Exit(2)
	}

	var data []byte
	var out string
	switch {
	case *file != "" && flag.NArg() == 1:
		d, err := readInput(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aztec-png: %v\n", err)
			os.Exit(1)
		}
		data = d
		out = flag.Arg(0)
	case *file == "" && flag.NArg() == 2:
		data = []byte(flag.Arg(0))
		out = flag.Arg(1)
	default:
		flag.Usage()
		os.Exit(2)
	}

	symbol, err := encoder.Encode(data, *correction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aztec-png: %v\n", err)
		os.Exit(1)
	}

	w, err := openOutput(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aztec-png: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := writePNG(w, symbol, *scale, *border); err != nil {
		fmt.Fprintf(os.Stderr, "aztec-png: %v\n", err)
		os.Exit(1)
	}
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{bufio.NewWriter(os.Stdout)}, nil
	}
	return os.Create(path)
}

// nopCloser flushes a *bufio.Writer on Close so stdout output is never lost.
type nopCloser struct {
	w *bufio.Writer
}

func (n nopCloser) Write(p []byte) (int, error) { return n.w.Write(p) }
func (n nopCloser) Close() error                { return n.w.Flush() }

// writePNG rasterizes the symbol to img, scaling each module by scale
// pixels and surrounding it with border modules of quiet zone, then
// encodes it as an 8-bit grayscale PNG of black and white pixels.
func writePNG(w io.Writer, symbol *encoder.Symbol, scale, border int) error {
	bs := border * scale
	n := symbol.Size * scale
	n2 := n + 2*bs

	img := image.NewGray(image.Rect(0, 0, n2, n2))
	white := color.Gray{Y: 255}
	for i := range img.Pix {
		img.Pix[i] = white.Y
	}

	rows := symbol.Rows(true)
	for y := 0; y < symbol.Size; y++ {
		row := rows[y]
		for x := 0; x < symbol.Size; x++ {
			bit := row[x/8]&(0x80>>uint(x%8)) != 0
			if !bit {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				py := bs + y*scale + sy
				for sx := 0; sx < scale; sx++ {
					px := bs + x*scale + sx
					img.SetGray(px, py, color.Gray{Y: 0})
				}
			}
		}
	}

	return png.Encode(w, img)
}
