package encoder

import "errors"

var (
	// ErrEmptyInput is returned when Encode is asked to encode zero bytes.
	ErrEmptyInput = errors.New("aztec: empty input")

	// ErrCapacityExceeded is returned when the data does not fit any of the
	// 32 full-symbol layers at the requested correction percentage.
	ErrCapacityExceeded = errors.New("aztec: data exceeds the largest symbol at the requested correction level")
)
