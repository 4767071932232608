// Package encoder implements the Aztec Code encoding pipeline: mode
// segmentation, bit-stream assembly, codeword packing, symbol-size
// selection, Reed-Solomon error correction, and module placement.
package encoder

import (
	"fmt"

	"github.com/monich/aztecgo/bitutil"
	"github.com/monich/aztecgo/reedsolomon"
)

// Symbol is the result of a successful Encode call: a square matrix of
// modules plus the descriptive fields a caller needs to rasterize or
// re-derive the mode message.
type Symbol struct {
	// Size is the number of modules per side.
	Size int

	// Compact reports whether this is a compact (1-4 layer) symbol as
	// opposed to a full (1-32 layer) one.
	Compact bool

	// Layers is the number of concentric data layers surrounding the core.
	Layers int

	// DataCodewords is the number of data codewords before Reed-Solomon
	// expansion (the value the mode message encodes).
	DataCodewords int

	// Matrix is the module grid, one bit per module, x is the column.
	Matrix *bitutil.BitMatrix

	bits *bitutil.BitArray
}

// Rows packs the symbol into Size rows of ceil(Size/8) bytes each. The
// default (msbFirst == false) packing is LSB-first: bit 0 of rows[i][0] is
// the leftmost module of row i. msbFirst packs bit 7 first instead,
// left-aligning the final partial byte of each row.
func (s *Symbol) Rows(msbFirst bool) [][]byte {
	return exportRows(s.Size, s.bits, msbFirst)
}

// Encode turns data into an Aztec Code symbol at the requested error
// correction percentage, automatically selecting the smallest compact or
// full symbol that fits. It returns ErrEmptyInput for zero-length data and
// ErrCapacityExceeded when data does not fit any defined symbol at the
// requested correction percentage.
func Encode(data []byte, correctionPercent int) (*Symbol, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	blocks := segment(data)
	bits := buildBitStream(blocks, data)

	// Fixed-point convergence loop: codeword width depends on the chosen
	// symbol, but repacking to that width changes the bit count (bit
	// stuffing), which can change the chosen symbol. Mirrors libaztec's
	// aztec_encode_full: re-pick and re-pack until the configuration
	// stops changing. Always terminates because cwsize only increases
	// across iterations (6, 8, 10, 12 bits).
	var cfg, prev config
	var words []int
	bitcount := bits.Size()
	for {
		c, ok := pickConfig(bitcount, correctionPercent)
		if !ok {
			return nil, fmt.Errorf("%w: %d bits at %d%% correction", ErrCapacityExceeded, bitcount, correctionPercent)
		}
		if c == prev {
			cfg = c
			break
		}
		words = packCodewords(bits, c.cwsize)
		bitcount = len(words) * c.cwsize
		prev = c
	}

	dataCount := len(words)
	codewords := make([]int, cfg.cwcount)
	copy(codewords, words)
	reedsolomon.NewEncoder(cfg.gf).Encode(codewords, cfg.cwcount-dataCount)

	// Repack the RS-expanded codewords into a bit stream, most
	// significant bit of each codeword first.
	dataBits := bitutil.NewBitArray(0)
	for _, w := range codewords {
		dataBits.AppendBits(uint32(w), cfg.cwsize)
	}

	var modeBits *bitutil.BitArray
	if cfg.compact {
		modeBits = compactModeMessage(cfg.layers, dataCount)
	} else {
		modeBits = fullModeMessage(cfg.layers, dataCount)
	}

	symbolBits := place(cfg, dataBits, modeBits)

	matrix := bitutil.NewBitMatrix(cfg.symsize)
	for y := 0; y < cfg.symsize; y++ {
		row := y * cfg.symsize
		for x := 0; x < cfg.symsize; x++ {
			if symbolBits.Get(row + x) {
				matrix.Set(x, y)
			}
		}
	}

	return &Symbol{
		Size:          cfg.symsize,
		Compact:       cfg.compact,
		Layers:        cfg.layers,
		DataCodewords: dataCount,
		Matrix:        matrix,
		bits:          symbolBits,
	}, nil
}
