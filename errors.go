package aztecgo

import "errors"

var (
	// ErrFormat is returned when a Writer is asked to encode a format it
	// does not implement.
	ErrFormat = errors.New("format error")

	// ErrWriter is returned when a barcode cannot be encoded.
	ErrWriter = errors.New("writer error")
)
