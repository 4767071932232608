package encoder

import "github.com/monich/aztecgo/bitutil"

// exportRows packs a symsize x symsize placement buffer (one bit per
// module, row-major, addressed as y*symsize+x) into symsize rows of
// ceil(symsize/8) bytes, grounded on aztec_encode_symbol_fill_row and
// aztec_encode_symbol_fill_row_inv.
//
// The default (msbFirst == false) packing puts the leftmost module of a
// row into bit 0 of the row's first byte. The msbFirst packing puts it
// into bit 7 instead, left-aligning the final partial byte.
func exportRows(symsize int, symbol *bitutil.BitArray, msbFirst bool) [][]byte {
	rowBytes := (symsize + 7) / 8
	rows := make([][]byte, symsize)
	for y := 0; y < symsize; y++ {
		row := make([]byte, rowBytes)
		i := y * symsize
		x := 0
		for ; (x + 1) < rowBytes; x++ {
			if msbFirst {
				row[x] = byte(symbol.Bits(i, 8))
			} else {
				row[x] = byte(symbol.GetInv(i, 8))
			}
			i += 8
		}
		tail := symsize - x*8
		if msbFirst {
			row[x] = byte(symbol.Bits(i, tail)) << uint(8-tail)
		} else {
			row[x] = byte(symbol.GetInv(i, tail))
		}
		rows[y] = row
	}
	return rows
}
