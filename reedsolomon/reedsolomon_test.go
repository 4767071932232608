package reedsolomon

import "testing"

func TestEncodeAztec(t *testing.T) {
	field := AztecData8
	dataSize := 10
	ecSize := 7
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = i + 1
	}

	enc := NewEncoder(field)
	enc.Encode(toEncode, ecSize)

	for i := 0; i < dataSize; i++ {
		if toEncode[i] != i+1 {
			t.Errorf("data[%d] = %d, want %d", i, toEncode[i], i+1)
		}
	}

	allZero := true
	for _, v := range toEncode[dataSize:] {
		if v != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Error("check words are all zero")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	field := AztecParam
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	a := append([]int(nil), data...)
	b := append([]int(nil), data...)

	NewEncoder(field).Encode(a, 5)
	NewEncoder(field).Encode(b, 5)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("encode is not deterministic at %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestGaloisFieldBasics(t *testing.T) {
	field := AztecData8
	if field.Size() != 256 {
		t.Errorf("size = %d, want 256", field.Size())
	}
	if field.GeneratorBase() != 1 {
		t.Errorf("generatorBase = %d, want 1", field.GeneratorBase())
	}

	// a * inverse(a) should be 1
	for a := 1; a < 256; a++ {
		inv := field.Inverse(a)
		product := field.Multiply(a, inv)
		if product != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, product)
		}
	}

	// a XOR a should be 0
	if AddOrSubtract(42, 42) != 0 {
		t.Error("a XOR a should be 0")
	}

	// multiply by 0
	if field.Multiply(0, 100) != 0 || field.Multiply(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
}

func TestGenericGFPoly(t *testing.T) {
	field := AztecData8

	// Test zero polynomial
	zero := field.Zero()
	if !zero.IsZero() {
		t.Error("zero should be zero")
	}

	// Test one polynomial
	one := field.One()
	if one.IsZero() {
		t.Error("one should not be zero")
	}
	if one.Degree() != 0 {
		t.Errorf("one degree = %d, want 0", one.Degree())
	}

	// p(x) = 2x + 3
	p := newGenericGFPoly(field, []int{2, 3})
	// p(0) = 3
	if p.EvaluateAt(0) != 3 {
		t.Errorf("p(0) = %d, want 3", p.EvaluateAt(0))
	}

	// Test multiply by scalar
	doubled := p.MultiplyScalar(1) // multiply by 1 should return same
	if doubled != p {
		t.Error("multiply by 1 should return same polynomial")
	}
}

func TestFieldConstants(t *testing.T) {
	for _, tc := range []struct {
		name string
		gf   *GenericGF
		size int
	}{
		{"AztecData6", AztecData6, 64},
		{"AztecData8", AztecData8, 256},
		{"AztecData10", AztecData10, 1024},
		{"AztecData12", AztecData12, 4096},
		{"AztecParam", AztecParam, 16},
	} {
		if tc.gf.Size() != tc.size {
			t.Errorf("%s: size = %d, want %d", tc.name, tc.gf.Size(), tc.size)
		}
		if tc.gf.GeneratorBase() != 1 {
			t.Errorf("%s: generatorBase = %d, want 1", tc.name, tc.gf.GeneratorBase())
		}
	}
}
