package aztecgo

import "github.com/monich/aztecgo/bitutil"

// Error correction percentages recognized by the encoder. Values between
// tiers round up to the next tier; CorrectionMedium is used when an
// EncodeOptions leaves CorrectionPercent at its zero value.
const (
	CorrectionLow     = 10
	CorrectionMedium  = 23
	CorrectionHigh    = 36
	CorrectionHighest = 50
)

// EncodeOptions configures barcode encoding behavior.
type EncodeOptions struct {
	// CorrectionPercent is the requested Reed-Solomon error correction
	// percentage. Zero resolves to CorrectionMedium.
	CorrectionPercent int
}

// Writer encodes data into a barcode.
type Writer interface {
	// Encode encodes the given contents into a barcode.
	Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
