package encoder

import "github.com/monich/aztecgo/bitutil"

// packCodewords splits bits into cwsize-bit codewords, stuffing a bit into
// any (cwsize-1)-bit window that is all zeros or all ones so the resulting
// codeword never equals either extreme value.
func packCodewords(bits *bitutil.BitArray, cwsize int) []int {
	words := make([]int, 0, bits.Size()/cwsize+1)
	windowSize := cwsize - 1
	ones := (1 << uint(windowSize)) - 1
	offset := 0
	total := bits.Size()

	for offset+windowSize <= total {
		word := int(bits.Bits(offset, windowSize))
		offset += windowSize

		var nextBit int
		switch {
		case word == 0:
			nextBit = 1
		case word == ones:
			nextBit = 0
		case offset < total:
			nextBit = int(bits.Bits(offset, 1))
			offset++
		default:
			nextBit = 1
		}
		words = append(words, (word<<1)|nextBit)
	}

	if offset < total {
		leftover := total - offset
		pad := cwsize - leftover
		data := (int(bits.Bits(offset, leftover)) << uint(pad)) | ((1 << uint(pad)) - 2)
		if data != ones<<1 {
			data |= 1
		}
		words = append(words, data)
	}
	return words
}
