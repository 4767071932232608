package encoder

import "github.com/monich/aztecgo/bitutil"

// compactCoreData is the 11x11 compact bullseye pattern, one 11-module
// row of bits per entry, least significant bit first within the row.
var compactCoreData = [11]uint32{
	0x0403, 0x07ff, 0x0202, 0x02fa, 0x028a, 0x02aa, 0x028a, 0x02fa,
	0x0202, 0x07fe, 0x0000,
}

// fullCoreData is the 15x15 full bullseye pattern, same convention.
var fullCoreData = [15]uint32{
	0x4003, 0x7fff, 0x2002, 0x2ffa, 0x280a, 0x2bea, 0x2a2a, 0x2aaa,
	0x2a2a, 0x2bea, 0x280a, 0x2ffa, 0x2002, 0x7ffe, 0x0000,
}

// place draws the data codewords and mode message into a symsize x symsize
// matrix bit buffer (row-major, one bit per module), returning it ready for
// export.
func place(cfg config, data, mode *bitutil.BitArray) *bitutil.BitArray {
	if cfg.compact {
		return placeCompact(cfg.symsize, data, mode)
	}
	return placeFull(cfg.symsize, data, mode)
}

// placeCompact lays out a compact symbol: core pattern, a single ring of
// mode message bits immediately around it, then concentric clockwise data
// layers, grounded on aztec_encode_compact_symbol.
func placeCompact(symsize int, data, mode *bitutil.BitArray) *bitutil.BitArray {
	const coreSize = 11
	symbol := bitutil.NewBitArray(symsize * symsize)
	coreOffset := (symsize - coreSize) / 2
	layers := coreOffset / 2

	k := coreOffset * (symsize + 1)
	for i := 0; i < coreSize; i++ {
		symbol.SetBits(k, compactCoreData[i], coreSize)
		k += symsize
	}

	k = coreOffset*(symsize+1) + 2
	symbol.SetBits(k, mode.GetInv(0, 7), 7)

	k += 2*symsize + 8
	for i := 7; i < 14; i++ {
		if mode.Get(i) {
			symbol.Set(k)
		}
		k += symsize
	}

	k += symsize - 8
	symbol.SetBits(k, mode.Bits(14, 7), 7)

	k = k - 2 - 2*symsize
	for i := 21; i < 28; i++ {
		if mode.Get(i) {
			symbol.Set(k)
		}
		k -= symsize
	}

	i := data.Size() - 1
	for l := 0; l < layers; l++ {
		n := coreSize + 2 + 4*l

		x := coreOffset - 2*l
		y := x - 1
		k0 := y*symsize + x
		for k := 0; k < n; k++ {
			pair := data.GetInv(i-1, 2)
			if pair&1 != 0 {
				symbol.Set(k0 - symsize)
			}
			if pair&2 != 0 {
				symbol.Set(k0)
			}
			k0++
			i -= 2
		}

		x = symsize - coreOffset + 2*l
		y = coreOffset - 2*l
		k0 = y*symsize + x
		for k := 0; k < n; k++ {
			pair := data.GetInv(i-1, 2)
			if pair&1 != 0 {
				symbol.Set(k0 + 1)
			}
			if pair&2 != 0 {
				symbol.Set(k0)
			}
			k0 += symsize
			i -= 2
		}

		y = x
		x = y - 1
		k0 = y*symsize + x
		for k := 0; k < n; k++ {
			pair := data.GetInv(i-1, 2)
			if pair&1 != 0 {
				symbol.Set(k0 + symsize)
			}
			if pair&2 != 0 {
				symbol.Set(k0)
			}
			k0--
			i -= 2
		}

		x = coreOffset - 1 - 2*l
		y = symsize - coreOffset - 1 + 2*l
		k0 = y*symsize + x
		for k := 0; k < n && i > 0; k++ {
			pair := data.GetInv(i-1, 2)
			if pair&1 != 0 {
				symbol.Set(k0 - 1)
			}
			if pair&2 != 0 {
				symbol.Set(k0)
			}
			k0 -= symsize
			i -= 2
		}
	}
	return symbol
}

// placeFull lays out a full symbol: core pattern, a sparse reference grid
// every 16 modules that the data layers route around, two 5-bit mode
// message blocks per side, then concentric clockwise data layers,
// grounded on aztec_encode_full_symbol.
func placeFull(symsize int, data, mode *bitutil.BitArray) *bitutil.BitArray {
	const coreSize = 15
	symbol := bitutil.NewBitArray(symsize * symsize)
	coreOffset := (symsize - coreSize) / 2
	center := symsize / 2

	k := coreOffset * (symsize + 1)
	for i := 0; i < coreSize; i++ {
		symbol.SetBits(k, fullCoreData[i], coreSize)
		k += symsize
	}

	for j := coreOffset - 1; j >= 0; j -= 2 {
		symbol.Set(symsize*j + center)
		symbol.Set(symsize*(symsize-j-1) + center)
		symbol.Set(symsize*center + j)
		symbol.Set(symsize*(center+1) - j - 1)
	}

	grid := []int{center}
	for j := center - 16; j >= 0; j -= 16 {
		k1 := symsize * j
		k2 := symsize * (symsize - j - 1)
		k3 := j
		k4 := symsize - j - 1
		grid = append(grid, k3, k4)
		for i := center & 1; i < symsize; i += 2 {
			symbol.Set(k1 + i)
			symbol.Set(k2 + i)
			symbol.Set(k3 + i*symsize)
			symbol.Set(k4 + i*symsize)
		}
	}
	containsGrid := func(v int) bool {
		for _, g := range grid {
			if g == v {
				return true
			}
		}
		return false
	}
	// Each reference grid line outside the core takes one module per side
	// away from the data layers.
	layers := (coreOffset - (len(grid)-1)/2) / 2

	k = coreOffset*(symsize+1) + 2
	symbol.SetBits(k, mode.GetInv(0, 5), 5)
	symbol.SetBits(k+6, mode.GetInv(5, 5), 5)

	k += 2*symsize + 12
	for i := 10; i < 15; i++ {
		if mode.Get(i) {
			symbol.Set(k)
		}
		k += symsize
	}
	k += symsize
	for i := 15; i < 20; i++ {
		if mode.Get(i) {
			symbol.Set(k)
		}
		k += symsize
	}

	k = k + symsize - 6
	symbol.SetBits(k, mode.Bits(20, 5), 5)
	symbol.SetBits(k-6, mode.Bits(25, 5), 5)

	k = k - 2*symsize - 8
	for i := 30; i < 35; i++ {
		if mode.Get(i) {
			symbol.Set(k)
		}
		k -= symsize
	}
	k -= symsize
	for i := 35; i < 40; i++ {
		if mode.Get(i) {
			symbol.Set(k)
		}
		k -= symsize
	}

	xstart := coreOffset + 2
	ystart := coreOffset + 1
	i := data.Size() - 1

	for l := 0; l < layers; l++ {
		n := coreSize + 1 + 4*l

		xstart--
		ystart--
		if containsGrid(xstart) {
			xstart--
		}
		if containsGrid(ystart) {
			ystart--
		}
		xstart--
		ystart--
		if containsGrid(xstart) {
			xstart--
		}
		if containsGrid(ystart) {
			ystart--
		}

		x0 := xstart
		y0 := ystart
		y1 := y0 - 1
		if containsGrid(y1) {
			y1--
		}

		x := x0
		for k := 0; k < n; k++ {
			if containsGrid(x) {
				x++
			}
			pair := data.GetInv(i-1, 2)
			if pair&2 != 0 {
				symbol.Set(y0*symsize + x)
			}
			if pair&1 != 0 {
				symbol.Set(y1*symsize + x)
			}
			x++
			i -= 2
		}

		x1 := x - 1
		x0 = x1 - 1
		if containsGrid(x0) {
			x0--
		}
		y0++
		if containsGrid(y0) {
			y0++
		}

		y := y0
		for k := 0; k < n; k++ {
			if containsGrid(y) {
				y++
			}
			pair := data.GetInv(i-1, 2)
			if pair&2 != 0 {
				symbol.Set(y*symsize + x0)
			}
			if pair&1 != 0 {
				symbol.Set(y*symsize + x1)
			}
			y++
			i -= 2
		}

		x0--
		if containsGrid(x0) {
			x0--
		}
		y1 = y - 1
		y0 = y1 - 1
		if containsGrid(y0) {
			y0--
		}
		x = x0
		for k := 0; k < n; k++ {
			if containsGrid(x) {
				x--
			}
			pair := data.GetInv(i-1, 2)
			if pair&2 != 0 {
				symbol.Set(y0*symsize + x)
			}
			if pair&1 != 0 {
				symbol.Set(y1*symsize + x)
			}
			x--
			i -= 2
		}

		x1 = x + 1
		x0 = x1 + 1
		if containsGrid(x0) {
			x0++
		}
		y0--
		if containsGrid(y0) {
			y0--
		}
		y = y0
		for k := 0; k < n && i > 0; k++ {
			if containsGrid(y) {
				y--
			}
			pair := data.GetInv(i-1, 2)
			if pair&2 != 0 {
				symbol.Set(y*symsize + x0)
			}
			if pair&1 != 0 {
				symbol.Set(y*symsize + x1)
			}
			y--
			i -= 2
		}
	}
	return symbol
}
