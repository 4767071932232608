package aztec

import (
	"testing"

	aztecgo "github.com/monich/aztecgo"
)

func TestAztecWriterEncode(t *testing.T) {
	m, err := NewWriter().Encode("Code 2D!", aztecgo.FormatAztec, 0, 0, nil)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	// 15x15 symbol plus a 1-module quiet zone on each side.
	if w, h := m.Width(), m.Height(); w != 17 || h != 17 {
		t.Errorf("unexpected matrix size: got %dx%d, want 17x17", w, h)
	}
}

func TestAztecWriterFormatValidation(t *testing.T) {
	const formatOther aztecgo.Format = aztecgo.FormatAztec + 1
	_, err := NewWriter().Encode("TEST", formatOther, 200, 200, nil)
	if err == nil {
		t.Error("expected error for wrong format on AztecWriter")
	}
}

func TestAztecWriterEmptyContents(t *testing.T) {
	_, err := NewWriter().Encode("", aztecgo.FormatAztec, 0, 0, nil)
	if err == nil {
		t.Error("expected error for empty contents")
	}
}
