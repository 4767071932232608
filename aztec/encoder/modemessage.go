package encoder

import (
	"github.com/monich/aztecgo/bitutil"
	"github.com/monich/aztecgo/reedsolomon"
)

// encodeModeMessage unpacks nibbles into 4-bit words, protects them with
// check words from reedsolomon.AztecParam, and repacks the whole thing,
// matching aztec_encode_mode_message.
func encodeModeMessage(nibbles *bitutil.BitArray, dataWords, checkWords int) *bitutil.BitArray {
	words := make([]int, dataWords+checkWords)
	for i := 0; i < dataWords; i++ {
		words[i] = int(nibbles.Bits(i*4, 4))
	}

	enc := reedsolomon.NewEncoder(reedsolomon.AztecParam)
	enc.Encode(words, checkWords)

	out := bitutil.NewBitArray(0)
	for _, w := range words {
		out.AppendBits(uint32(w), 4)
	}
	return out
}

// compactModeMessage builds the 28-bit mode message for a compact symbol:
// a 2-bit layer count, a 6-bit codeword count, and 5 check words.
func compactModeMessage(layers, codewords int) *bitutil.BitArray {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(uint32(layers-1), 2)
	bits.AppendBits(uint32(codewords-1), 6)
	return encodeModeMessage(bits, 2, 5)
}

// fullModeMessage builds the 40-bit mode message for a full symbol: a 5-bit
// layer count, an 11-bit codeword count, and 6 check words.
func fullModeMessage(layers, codewords int) *bitutil.BitArray {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(uint32(layers-1), 5)
	bits.AppendBits(uint32(codewords-1), 11)
	return encodeModeMessage(bits, 4, 6)
}
