package offset

import (
	"bytes"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		len  int64
		want int
	}{
		{"zero", 0, 1},
		{"max 1-byte", 0xFF, 1},
		{"just over 1-byte", 0x100, 2},
		{"max 2-byte", 0xFFFF, 2},
		{"just over 2-byte", 0x10000, 4},
		{"max 4-byte", 0xFFFFFFFF, 4},
		{"just over 4-byte", 0x100000000, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.len); got != tt.want {
				t.Errorf("Width(%#x) = %d, want %d", tt.len, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		cursor    int64
		alignment int
		want      int64
	}{
		{0, 1, 0},
		{0, 8, 0},
		{1, 8, 7},
		{4, 4, 0},
		{5, 4, 3},
		{7, 2, 1},
		{8, 2, 0},
		{3, 1, 0},
	}
	for _, tt := range tests {
		if got := Pad(tt.cursor, tt.alignment); got != tt.want {
			t.Errorf("Pad(%d,%d) = %d, want %d", tt.cursor, tt.alignment, got, tt.want)
		}
	}
}

func TestAppendAndReadWidthRoundtrip(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8} {
		var vals []int64
		switch w {
		case 1:
			vals = []int64{0, 1, 0xFE}
		case 2:
			vals = []int64{0, 0x1234, 0xFFFE}
		case 4:
			vals = []int64{0, 0x12345678}
		case 8:
			vals = []int64{0, 0x0102030405060708}
		}
		for _, v := range vals {
			buf := AppendWidth(nil, v, w)
			if len(buf) != w {
				t.Fatalf("AppendWidth width=%d produced %d bytes", w, len(buf))
			}
			got, err := ReadWidth(buf, w)
			if err != nil {
				t.Fatalf("ReadWidth: %v", err)
			}
			if got != v {
				t.Errorf("width=%d: roundtrip %#x -> %#x", w, v, got)
			}
		}
	}
}

func TestAppendWidthKnownBytes(t *testing.T) {
	// From spec.md scenario 3: array of u32 [4, 258] uses no offset table
	// (fixed-width elements) but AppendWidth itself is exercised directly
	// here with the 2-byte little-endian case.
	got := AppendWidth(nil, 0x0102, 2)
	want := []byte{0x02, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendWidth(0x0102, 2) = % x, want % x", got, want)
	}
}

func TestReadWidthTruncated(t *testing.T) {
	if _, err := ReadWidth([]byte{1, 2}, 4); err == nil {
		t.Errorf("ReadWidth with too few bytes should fail")
	}
}

func TestReadAtForward(t *testing.T) {
	// window body(2 bytes) + forward offset table of 2 entries, width 1.
	window := []byte{0xAA, 0xBB, 0x01, 0x02}
	got0, err := ReadAt(window, 1, 2, 0)
	if err != nil || got0 != 1 {
		t.Errorf("ReadAt(i=0) = %d,%v, want 1,nil", got0, err)
	}
	got1, err := ReadAt(window, 1, 2, 1)
	if err != nil || got1 != 2 {
		t.Errorf("ReadAt(i=1) = %d,%v, want 2,nil", got1, err)
	}
	if _, err := ReadAt(window, 1, 2, 2); err == nil {
		t.Errorf("ReadAt with out-of-range index should fail")
	}
}

func TestReadAtReverse(t *testing.T) {
	// Structure with 2 recorded offsets in reverse order at the tail:
	// offset[0] at e-1*w, offset[1] at e-2*w.
	window := []byte{0xAA, 0xBB, 0xCC, 0x02, 0x01}
	got0, err := ReadAtReverse(window, 1, 0)
	if err != nil || got0 != 1 {
		t.Errorf("ReadAtReverse(i=0) = %d,%v, want 1,nil", got0, err)
	}
	got1, err := ReadAtReverse(window, 1, 1)
	if err != nil || got1 != 2 {
		t.Errorf("ReadAtReverse(i=1) = %d,%v, want 2,nil", got1, err)
	}
	if _, err := ReadAtReverse(window, 1, 5); err == nil {
		t.Errorf("ReadAtReverse with out-of-range index should fail")
	}
}

func TestReadAtUnderflow(t *testing.T) {
	window := []byte{0x01}
	if _, err := ReadAt(window, 4, 3, 0); err == nil {
		t.Errorf("ReadAt should fail when offset table does not fit window")
	}
}
