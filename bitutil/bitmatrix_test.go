package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixDimensions(t *testing.T) {
	bm := NewBitMatrixWithSize(7, 3)
	if bm.Width() != 7 || bm.Height() != 3 {
		t.Errorf("Width/Height = %d/%d, want 7/3", bm.Width(), bm.Height())
	}
	square := NewBitMatrix(5)
	if square.Width() != 5 || square.Height() != 5 {
		t.Errorf("NewBitMatrix(5) = %dx%d, want 5x5", square.Width(), square.Height())
	}
}

func TestBitMatrixString(t *testing.T) {
	bm := NewBitMatrixWithSize(2, 2)
	bm.Set(1, 0)
	want := "  X \n    \n"
	if got := bm.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
