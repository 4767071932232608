package encoder

// Character mode bitmasks. A byte's candidate modes are expressed as a
// bitmask so two adjacent bytes can be tested for a mode in common; modeSubst
// narrows a combined mask back down to one concrete mode to latch into.
const (
	modeBinary = 0x00
	modeUpper  = 0x01
	modeLower  = 0x02
	modeMixed  = 0x04
	modePunct  = 0x08
	modeDigit  = 0x10
)

const (
	cr = 0x0D
	lf = 0x0A
	sp = 0x20
)

// block is a maximal run of input bytes assigned to a single character mode.
type block struct {
	start int
	len   int
	mode  byte
}

// modeTable maps each byte value to the bitmask of modes that can encode it
// directly (as opposed to falling back to binary). Bytes with no bit set can
// only be encoded as binary data.
var modeTable = [256]byte{
	0x00, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0c, 0x04, 0x04, 0x0c, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x04, 0x04, 0x04,
	0x1f, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x18, 0x08, 0x18, 0x08,
	0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08,
	0x04, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x08, 0x04, 0x08, 0x04, 0x04,
	0x04, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02,
	0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x08, 0x04, 0x08, 0x04, 0x04,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// modeSubst narrows a combined candidate mask, indexed by its numeric value
// (0-31), down to the single mode a block actually latches into. Digit and
// Mixed are preferred over Upper whenever both are candidates.
var modeSubst = [32]byte{
	0x00, 0x01, 0x02, 0x01, 0x04, 0x04, 0x04, 0x04,
	0x08, 0x01, 0x02, 0x01, 0x04, 0x04, 0x04, 0x04,
	0x10, 0x10, 0x02, 0x10, 0x04, 0x04, 0x04, 0x04,
	0x08, 0x10, 0x02, 0x10, 0x04, 0x04, 0x04, 0x04,
}

// segment splits data into maximal same-mode blocks, then enlarges digit
// runs by stealing trailing digit-valid bytes from the block before them.
func segment(data []byte) []block {
	if len(data) == 0 {
		return nil
	}
	first := modeTable[data[0]]
	if data[0] == lf || data[0] == sp {
		first &^= modePunct
	}
	blocks := []block{{start: 0, len: 1, mode: first}}
	for i := 1; i < len(data); i++ {
		c := data[i]
		m := modeTable[c]
		last := &blocks[len(blocks)-1]
		if last.mode&modePunct != 0 && (c == lf || c == sp) {
			prev := data[i-1]
			if c == lf && prev == cr {
				last.len++
				continue
			}
			if c == sp && (prev == '.' || prev == ',' || prev == ':') {
				last.len++
				continue
			}
			m &^= modePunct
		}
		if last.mode == m {
			last.len++
			continue
		}
		if last.mode != 0 && last.mode&m != 0 {
			last.mode &= m
			last.len++
			continue
		}
		if c == lf || c == sp {
			m &^= modePunct
		}
		blocks = append(blocks, block{start: i, len: 1, mode: m})
	}
	for i := range blocks {
		blocks[i].mode = modeSubst[blocks[i].mode]
	}
	enlargeDigitRuns(blocks, data)
	return blocks
}

// enlargeDigitRuns moves digit-valid trailing bytes of a block into the
// digit block that immediately follows it. The absorption only ever runs
// backward into the preceding block; a digit run never grows forward.
func enlargeDigitRuns(blocks []block, data []byte) {
	for i := 0; i+1 < len(blocks); i++ {
		next := &blocks[i+1]
		if next.mode != modeDigit {
			continue
		}
		cur := &blocks[i]
		pos := cur.start + cur.len - 1
		for pos > cur.start && modeTable[data[pos]]&modeDigit != 0 {
			pos--
			next.start--
			next.len++
			cur.len--
		}
	}
}
