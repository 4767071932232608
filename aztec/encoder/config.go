package encoder

import "github.com/monich/aztecgo/reedsolomon"

// symbolParams describes one layer count's physical symbol: the overall
// side length in modules, the codeword width in bits, and the total number
// of codewords (data plus error correction) the symbol carries.
type symbolParams struct {
	size    int
	cwsize  int
	cwcount int
}

// compactSymbols is Table 1 for compact (1-4 layer) symbols, indexed by
// layers-1.
var compactSymbols = [4]symbolParams{
	{15, 6, 17}, {19, 6, 40},
	{23, 8, 51}, {27, 8, 76},
}

// fullSymbols is Table 1 for full (1-32 layer) symbols, indexed by
// layers-1.
var fullSymbols = [32]symbolParams{
	{19, 6, 21}, {23, 6, 48},
	{27, 8, 60}, {31, 8, 88},
	{37, 8, 120}, {41, 8, 156},
	{45, 8, 196}, {49, 8, 240},
	{53, 10, 230}, {57, 10, 272},
	{61, 10, 316}, {67, 10, 364},
	{71, 10, 416}, {75, 10, 470},
	{79, 10, 528}, {83, 10, 588},
	{87, 10, 652}, {91, 10, 720},
	{95, 10, 790}, {101, 10, 864},
	{105, 10, 940}, {109, 10, 1020},
	{113, 12, 920}, {117, 12, 992},
	{121, 12, 1066}, {125, 12, 1144},
	{131, 12, 1224}, {135, 12, 1306},
	{139, 12, 1392}, {143, 12, 1480},
	{147, 12, 1570}, {151, 12, 1664},
}

// errorCorrectionTier is the maximum number of data bits a symbol of each
// layer count can carry at a given error correction percentage.
type errorCorrectionTier struct {
	percent int
	compact [4]int
	full    [32]int
}

var errorCorrectionTiers = [4]errorCorrectionTier{
	{
		percent: 10,
		compact: [4]int{78, 198, 336, 520},
		full: [32]int{
			96, 246, 408, 616, 840, 1104, 1392, 1704, 2040, 2420,
			2820, 3250, 3720, 4200, 4730, 5270, 5840, 6450, 7080, 7750,
			8430, 9150, 9900, 10680, 11484, 12324, 13188, 14076, 15000, 15948,
			16920, 17940,
		},
	},
	{
		percent: 23,
		compact: [4]int{66, 168, 288, 440},
		full: [32]int{
			84, 204, 352, 520, 720, 944, 1184, 1456, 1750, 2070,
			2410, 2780, 3180, 3590, 4040, 4500, 5000, 5520, 6060, 6630,
			7210, 7830, 8472, 9132, 9816, 10536, 11280, 12036, 12828, 13644,
			14472, 15348,
		},
	},
	{
		percent: 36,
		compact: [4]int{48, 138, 232, 360},
		full: [32]int{
			66, 168, 288, 432, 592, 776, 984, 1208, 1450, 1720,
			2000, 2300, 2640, 2980, 3350, 3740, 4150, 4580, 5030, 5500,
			5990, 6500, 7032, 7584, 8160, 8760, 9372, 9996, 10656, 11340,
			12024, 12744,
		},
	},
	{
		percent: 50,
		compact: [4]int{36, 102, 176, 280},
		full: [32]int{
			48, 126, 216, 328, 456, 600, 760, 936, 1120, 1330,
			1550, 1790, 2050, 2320, 2610, 2910, 3230, 3570, 3920, 4290,
			4670, 5070, 5484, 5916, 6360, 6828, 7308, 7800, 8316, 8844,
			9384, 9948,
		},
	},
}

// config is the chosen symbol size and error correction field for a given
// amount of data, mirroring libaztec's AztecConfig.
type config struct {
	compact bool
	layers  int
	symsize int
	cwsize  int
	cwcount int
	gf      *reedsolomon.GenericGF
}

func gfForCodewordSize(cwsize int) *reedsolomon.GenericGF {
	switch cwsize {
	case 6:
		return reedsolomon.AztecData6
	case 8:
		return reedsolomon.AztecData8
	case 10:
		return reedsolomon.AztecData10
	case 12:
		return reedsolomon.AztecData12
	default:
		return nil
	}
}

// pickConfig chooses the smallest symbol (preferring compact, then
// increasing layer counts) that fits bitcount bits of data at the given
// error correction percentage. It reports false if the data is too large
// for any defined symbol at that correction level.
func pickConfig(bitcount, correctionPercent int) (config, bool) {
	tier := errorCorrectionTiers[len(errorCorrectionTiers)-1]
	for _, t := range errorCorrectionTiers {
		if correctionPercent <= t.percent {
			tier = t
			break
		}
	}

	for i, capacity := range tier.compact {
		if bitcount <= capacity {
			sym := compactSymbols[i]
			return config{
				compact: true,
				layers:  i + 1,
				symsize: sym.size,
				cwsize:  sym.cwsize,
				cwcount: sym.cwcount,
				gf:      gfForCodewordSize(sym.cwsize),
			}, true
		}
	}
	for i, capacity := range tier.full {
		if bitcount <= capacity {
			sym := fullSymbols[i]
			return config{
				compact: false,
				layers:  i + 1,
				symsize: sym.size,
				cwsize:  sym.cwsize,
				cwcount: sym.cwcount,
				gf:      gfForCodewordSize(sym.cwsize),
			}, true
		}
	}
	return config{}, false
}
