package encoder

import "github.com/monich/aztecgo/bitutil"

// Per-mode character code tables. Each maps an ASCII byte to its 5-bit code
// (4-bit for digit) within that mode; entries for bytes a mode never
// actually carries are left zero and never read, since the segmenter only
// ever emits a block in a mode that modeTable allows for every byte in it.
var upperCode [128]byte
var lowerCode [128]byte
var mixedCode [128]byte
var punctCode [128]byte
var digitCode [128]byte

func init() {
	upperCode[sp] = 1
	for c := byte('A'); c <= 'Z'; c++ {
		upperCode[c] = 2 + (c - 'A')
	}

	lowerCode[sp] = 1
	for c := byte('a'); c <= 'z'; c++ {
		lowerCode[c] = 2 + (c - 'a')
	}

	mixedCode[sp] = 1
	for c := byte(1); c <= 13; c++ {
		mixedCode[c] = 2 + (c - 1)
	}
	mixedCode[0x1B] = 15
	mixedCode[0x1C] = 16
	mixedCode[0x1D] = 17
	mixedCode[0x1E] = 18
	mixedCode[0x1F] = 19
	mixedCode['@'] = 20
	mixedCode['\\'] = 21
	mixedCode['^'] = 22
	mixedCode['_'] = 23
	mixedCode['`'] = 24
	mixedCode['|'] = 25
	mixedCode['~'] = 26
	mixedCode[0x7F] = 27

	punctCode[cr] = 1
	punct := "!\"#$%&'()*+,-./"
	for i := 0; i < len(punct); i++ {
		punctCode[punct[i]] = byte(6 + i)
	}
	punctCode[':'] = 21
	punctCode[';'] = 22
	punctCode['<'] = 23
	punctCode['='] = 24
	punctCode['>'] = 25
	punctCode['?'] = 26
	punctCode['['] = 27
	punctCode[']'] = 28
	punctCode['{'] = 29
	punctCode['}'] = 30

	digitCode[sp] = 1
	for c := byte('0'); c <= '9'; c++ {
		digitCode[c] = 2 + (c - '0')
	}
	digitCode[','] = 12
	digitCode['.'] = 13
}

// builder drives the bitstream assembly for a block list, tracking the
// current mode plus the mode to return to after a single-character shift.
type builder struct {
	bits         *bitutil.BitArray
	mode         byte
	popMode      byte
	binaryOffset int
	binaryLen    int
}

// addBits appends a code value most significant bit first, matching
// aztec_encode_builder_add_bits (which always calls the stream's inverted
// append so the mode/shift codes land in their natural bit order).
func (b *builder) addBits(value uint32, numBits int) {
	b.bits.AppendBits(value, numBits)
}

// appendBinaryLength emits the B/S length field: a direct 5-bit count below
// 32, a sentinel value of 31 followed by another 5-bit block for lengths up
// to 62 (more compact than the 11-bit form), and a 5-bit zero marker plus an
// 11-bit count otherwise.
func (b *builder) appendBinaryLength(length int) {
	switch {
	case length < 32:
		b.binaryLen = length
		b.addBits(uint32(b.binaryLen), 5)
	case length < 63:
		b.binaryLen = 31
		b.addBits(31, 5)
	default:
		const maxLen = 0x7FF
		if length > maxLen {
			length = maxLen
		}
		b.binaryLen = length
		b.addBits(0, 5)
		b.addBits(uint32(b.binaryLen), 11)
	}
}

func (b *builder) appendBinaryData(blk block, data []byte) {
	for i := 0; i < b.binaryLen; i++ {
		b.addBits(uint32(data[blk.start+b.binaryOffset]), 8)
		b.binaryOffset++
	}
	b.binaryLen = 0
}

func (b *builder) appendData(blk block, data []byte, codes []byte, numBits int) {
	for i := 0; i < blk.len; i++ {
		b.addBits(uint32(codes[data[blk.start+i]]), numBits)
	}
}

func (b *builder) appendPunct(blk block, data []byte) {
	i := 0
	for ; i+1 < blk.len; i++ {
		c0 := data[blk.start+i]
		c1 := data[blk.start+i+1]
		switch {
		case c0 == cr && c1 == lf:
			b.addBits(2, 5)
			i++
		case c0 == '.' && c1 == sp:
			b.addBits(3, 5)
			i++
		case c0 == ',' && c1 == sp:
			b.addBits(4, 5)
			i++
		case c0 == ':' && c1 == sp:
			b.addBits(5, 5)
			i++
		default:
			b.addBits(uint32(punctCode[c0]), 5)
		}
	}
	if i < blk.len {
		b.addBits(uint32(punctCode[data[blk.start+i]]), 5)
	}
}

// shiftOrLatch emits the shift or latch sequence needed to move from the
// builder's current mode to blk.mode, then updates the mode. A single
// element block shifts where the mode pair has a shift code (to Punct from
// Upper, Lower, Mixed or Digit; to Upper from Lower or Digit) and latches
// otherwise; binary is always entered with a B/S shift.
func (b *builder) shiftOrLatch(blk block, data []byte) {
	if b.mode == blk.mode {
		return
	}
	switch b.mode {
	case modeUpper:
		switch blk.mode {
		case modeBinary:
			b.addBits(31, 5)
			b.appendBinaryLength(blk.len - b.binaryOffset)
			b.popMode = b.mode
		case modeLower:
			b.addBits(28, 5)
		case modeMixed:
			b.addBits(29, 5)
		case modePunct:
			if blk.len == 1 {
				b.addBits(0, 5)
				b.popMode = b.mode
			} else {
				b.addBits(29, 5)
				b.addBits(30, 5)
			}
		case modeDigit:
			b.addBits(30, 5)
		}
	case modeLower:
		switch blk.mode {
		case modeBinary:
			b.addBits(31, 5)
			b.appendBinaryLength(blk.len - b.binaryOffset)
			b.popMode = b.mode
		case modeUpper:
			if blk.len == 1 {
				b.addBits(28, 5)
				b.popMode = b.mode
			} else {
				b.addBits(30, 5)
				b.addBits(14, 4)
			}
		case modeMixed:
			b.addBits(29, 5)
		case modePunct:
			if blk.len == 1 {
				b.addBits(0, 5)
				b.popMode = b.mode
			} else {
				b.addBits(29, 5)
				b.addBits(30, 5)
			}
		case modeDigit:
			b.addBits(30, 5)
		}
	case modeMixed:
		switch blk.mode {
		case modeBinary:
			b.addBits(31, 5)
			b.appendBinaryLength(blk.len - b.binaryOffset)
			b.popMode = b.mode
		case modeUpper:
			b.addBits(29, 5)
		case modeLower:
			b.addBits(28, 5)
		case modePunct:
			if blk.len == 1 {
				b.addBits(0, 5)
				b.popMode = b.mode
			} else {
				b.addBits(30, 5)
			}
		case modeDigit:
			b.addBits(28, 5)
			b.addBits(30, 5)
		}
	case modePunct:
		switch blk.mode {
		case modeBinary:
			b.addBits(31, 5)
			b.addBits(31, 5)
			b.appendBinaryLength(blk.len - b.binaryOffset)
			b.popMode = modeUpper
		case modeUpper:
			b.addBits(31, 5)
		case modeLower:
			b.addBits(31, 5)
			b.addBits(28, 5)
		case modeMixed:
			b.addBits(31, 5)
			b.addBits(29, 5)
		case modeDigit:
			b.addBits(31, 5)
			b.addBits(30, 5)
		}
	case modeDigit:
		switch blk.mode {
		case modeBinary:
			b.addBits(14, 4)
			b.addBits(31, 5)
			b.appendBinaryLength(blk.len - b.binaryOffset)
			b.popMode = modeUpper
		case modeUpper:
			if blk.len == 1 {
				b.addBits(15, 4)
				b.popMode = b.mode
			} else {
				b.addBits(14, 4)
			}
		case modeLower:
			b.addBits(14, 4)
			b.addBits(28, 5)
		case modeMixed:
			b.addBits(14, 4)
			b.addBits(29, 5)
		case modePunct:
			if blk.len == 1 {
				b.addBits(0, 4)
				b.popMode = b.mode
			} else {
				b.addBits(14, 4)
				b.addBits(29, 5)
				b.addBits(30, 5)
			}
		}
	}
	b.mode = blk.mode
}

// buildBitStream walks the block list produced by segment, emitting the
// mode-aware bit sequence for the whole message starting in upper mode.
func buildBitStream(blocks []block, data []byte) *bitutil.BitArray {
	b := &builder{bits: bitutil.NewBitArray(0), mode: modeUpper}
	for _, blk := range blocks {
		if b.popMode != 0 {
			b.mode = b.popMode
			b.popMode = 0
		}
		b.shiftOrLatch(blk, data)
		switch b.mode {
		case modeBinary:
			b.appendBinaryData(blk, data)
			for b.binaryOffset < blk.len {
				b.mode = b.popMode
				b.shiftOrLatch(blk, data)
				b.appendBinaryData(blk, data)
			}
			b.binaryOffset = 0
		case modePunct:
			b.appendPunct(blk, data)
		case modeUpper:
			b.appendData(blk, data, upperCode[:], 5)
		case modeLower:
			b.appendData(blk, data, lowerCode[:], 5)
		case modeMixed:
			b.appendData(blk, data, mixedCode[:], 5)
		case modeDigit:
			b.appendData(blk, data, digitCode[:], 4)
		}
	}
	return b.bits
}
