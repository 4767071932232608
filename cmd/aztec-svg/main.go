// Command aztec-svg renders an Aztec Code symbol as an SVG document.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/monich/aztecgo/aztec/encoder"
)

func main() {
	scale := flag.Int("scale", 1, "size of one module, in pixels")
	border := flag.Int("border", 1, "border around the symbol, in modules")
	correction := flag.Int("correction", 23, "error correction percentage")
	file := flag.String("file", "", "read data from FILE instead of the command line ('-' for stdin)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aztec-svg [flags] TEXT SVG\n       aztec-svg [flags] -file FILE SVG\n\n")
		fmt.Fprintf(os.Stderr, "Generates an Aztec symbol as an SVG file. SVG may be \"-\" for stdout.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *scale < 1 {
		fmt.Fprintln(os.Stderr, "aztec-svg: scale must be at least 1")
		os.Exit(2)
	}
	if *border < 0 {
		fmt.Fprintln(os.Stderr, "aztec-svg: border must not be negative")
		os.Exit(2)
	}

	var data []byte
	var out string
	switch {
	case *file != "" && flag.NArg() == 1:
		d, err := readInput(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aztec-svg: %v\n", err)
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
		fmt.Fprintf(os.Stderr, "aztec-svg: %v\n", err)
		os.Exit(1)
	}

	w, err := openOutput(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aztec-svg: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := writeSVG(w, symbol, *scale, *border); err != nil {
		fmt.Fprintf(os.Stderr, "aztec-svg: %v\n", err)
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

type nopCloser struct {
	w *bufio.Writer
}

func (n nopCloser) Write(p []byte) (int, error) { return n.w.Write(p) }
func (n nopCloser) Close() error                { return n.w.Flush() }

// writeSVG emits one <rect> per dark module on a white background,
// grouped under a single fill so the document stays small even for
// high-layer symbols.
func writeSVG(w io.Writer, symbol *encoder.Symbol, scale, border int) error {
	bs := border * scale
	n := symbol.Size*scale + 2*bs

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg version=\"1.1\" width=\"%d\" height=\"%d\" "+
		"xmlns=\"http://www.w3.org/2000/svg\">\n", n, n)
	fmt.Fprintf(bw, "<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"white\"/>\n", n, n)
	fmt.Fprintf(bw, "<g fill=\"black\">\n")

	for y := 0; y < symbol.Size; y++ {
		for x := 0; x < symbol.Size; x++ {
			if symbol.Matrix.Get(x, y) {
				fmt.Fprintf(bw, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
					bs+x*scale, bs+y*scale, scale, scale)
			}
		}
	}

	fmt.Fprintf(bw, "</g>\n</svg>\n")
	return bw.Flush()
}
