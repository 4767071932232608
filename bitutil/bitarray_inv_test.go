package bitutil

import "testing"

func TestBitArrayBitsRoundTrip(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x1A, 6) // 011010
	if got := ba.Bits(0, 6); got != 0x1A {
		t.Errorf("Bits(0,6) = %#x, want 0x1a", got)
	}
	if got := ba.Bits(2, 4); got != 0x0A {
		t.Errorf("Bits(2,4) = %#x, want 0xa", got)
	}
}

func TestBitArrayBitsOutOfRange(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x3, 2)
	if got := ba.Bits(2, 4); got != 0 {
		t.Errorf("Bits at size = %#x, want 0", got)
	}
	// offset+numBits beyond size clamps to the available tail.
	if got := ba.Bits(1, 4); got != 1 {
		t.Errorf("Bits clamped tail = %#x, want 1", got)
	}
}

func TestBitArrayAppendBitsInvRoundTrip(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBitsInv(0x06, 5) // 0b00110
	if got := ba.Bits(0, 5); got != 0x0C {
		t.Errorf("Bits after inv append = %#x, want 0xc (0b01100)", got)
	}
	if got := ba.GetInv(0, 5); got != 0x06 {
		t.Errorf("GetInv round-trip = %#x, want 0x6", got)
	}
}

func TestBitArrayAppendBitsInvAllOnesShortCircuit(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBitsInv(0x1F, 5) // all ones: nothing to invert
	if got := ba.Bits(0, 5); got != 0x1F {
		t.Errorf("all-ones inv append = %#x, want 0x1f", got)
	}
}

func TestBitArrayAppendBitsInvSingleBit(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBitsInv(1, 1)
	if !ba.Get(0) {
		t.Error("single-bit inv append should behave like AppendBits")
	}
}
