package encoder

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		correction int
		msbFirst   bool
		size       int
		compact    bool
		rows       map[int]string // row index -> expected bytes, hex-encoded space-separated
	}{
		{
			name: "Code 2D!", data: "Code 2D!", correction: 23,
			size: 15, compact: true,
			rows: map[int]string{0: "18 03", 1: "c0 20", 3: "fe 1f", 14: "67 03"},
		},
		{
			name: "test LSB", data: "test", correction: 23,
			size: 15, compact: true,
			rows: map[int]string{0: "2c 56", 3: "fe 1f", 14: "d7 29"},
		},
		{
			name: "test MSB", data: "test", correction: 23, msbFirst: true,
			size: 15, compact: true,
			rows: map[int]string{0: "34 6a", 3: "7f f8", 14: "eb 94"},
		},
		{
			name: "email", data: "slava@monich.com", correction: 50,
			size: 19, compact: true,
			rows: map[int]string{0: "33 b3 01", 18: "d9 19 00"},
		},
		{
			name: "comma space", data: ", ", correction: 0,
			size: 15, compact: true,
			rows: map[int]string{0: "40 3d", 14: "35 6e"},
		},
		{
			name: "alpha case", data: "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQq", correction: 50,
			size: 27, compact: true,
			rows: map[int]string{0: "a8 ed 94 06", 26: "66 2a bb 02"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := Encode([]byte(tc.data), tc.correction)
			if err != nil {
				t.Fatalf("encode error: %v", err)
			}
			if sym.Size != tc.size {
				t.Errorf("size: got %d, want %d", sym.Size, tc.size)
			}
			if sym.Compact != tc.compact {
				t.Errorf("compact: got %v, want %v", sym.Compact, tc.compact)
			}

			rows := sym.Rows(tc.msbFirst)
			for idx, want := range tc.rows {
				got := formatRow(rows[idx])
				if got != want {
					t.Errorf("row %d: got %q, want %q", idx, got, want)
				}
			}
		})
	}
}

func TestEncodeCapacityExceeded(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"), 26)
	if _, err := Encode(data, 50); err == nil {
		t.Fatal("expected capacity exceeded error")
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	if _, err := Encode(nil, 23); err != ErrEmptyInput {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	s1, err := Encode([]byte("deterministic"), 23)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	s2, err := Encode([]byte("deterministic"), 23)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	if s1.Size != s2.Size || s1.Layers != s2.Layers || s1.DataCodewords != s2.DataCodewords {
		t.Fatal("two encodes of identical input produced different configurations")
	}
	r1, r2 := s1.Rows(false), s2.Rows(false)
	for i := range r1 {
		if !bytes.Equal(r1[i], r2[i]) {
			t.Fatalf("row %d differs between identical encodes", i)
		}
	}
}

func formatRow(row []byte) string {
	parts := make([]string, len(row))
	for i, b := range row {
		parts[i] = hexByte(b)
	}
	return strings.Join(parts, " ")
}

func hexByte(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
