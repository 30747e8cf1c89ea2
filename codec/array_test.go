package codec

import (
	"bytes"
	"testing"

	"govariant/config"
	"govariant/typesig"
	"govariant/variant"
)

func TestArrayFixedWidthScenario3(t *testing.T) {
	// spec.md §8 scenario 3: a u, [4, 258] -> 04 00 00 00 02 01 00 00
	cfg := config.New()
	arr := variant.Array(typesig.Uint32(), variant.Uint32(4), variant.Uint32(258))
	got, err := Encode(cfg, arr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x04, 0x00, 0x00, 0x00, 0x02, 0x01, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("encode = % x, want % x", got, want)
	}

	decoded, err := Decode(cfg, typesig.Array(typesig.Uint32()), got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(arr) {
		t.Errorf("decoded %v != original %v", decoded, arr)
	}
}

func TestArrayOfBytesScenario4(t *testing.T) {
	// spec.md §8 scenario 4: a y, [4,5,6,7] -> 04 05 06 07
	cfg := config.New()
	arr := variant.Array(typesig.Byte(), variant.Byte(4), variant.Byte(5), variant.Byte(6), variant.Byte(7))
	got, err := Encode(cfg, arr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{4, 5, 6, 7}
	if !bytes.Equal(got, want) {
		t.Errorf("encode = % x, want % x", got, want)
	}
}

func TestEmptyArray(t *testing.T) {
	cfg := config.New()
	arr := variant.Array(typesig.Uint32())
	got, err := Encode(cfg, arr)
	if err != nil || len(got) != 0 {
		t.Errorf("empty array should encode to zero bytes, got % x, err=%v", got, err)
	}
	decoded, err := Decode(cfg, typesig.Array(typesig.Uint32()), got)
	if err != nil {
		t.Fatalf("Decode empty array: %v", err)
	}
	if len(decoded.Items()) != 0 {
		t.Errorf("decoded empty array has %d items, want 0", len(decoded.Items()))
	}
}

func TestArrayOfStringsRoundtrip(t *testing.T) {
	cfg := config.New()
	arr := variant.Array(typesig.String(), variant.String("fo"), variant.String("obar"), variant.String(""))
	enc, err := Encode(cfg, arr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(cfg, typesig.Array(typesig.String()), enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(arr) {
		t.Errorf("roundtrip mismatch: got %v, want %v", decoded, arr)
	}
}

func TestArrayOfArraysRoundtrip(t *testing.T) {
	cfg := config.New()
	inner1 := variant.Array(typesig.String(), variant.String("fo"), variant.String("obar"))
	inner2 := variant.Array(typesig.String(), variant.String("qux"))
	outer := variant.Array(typesig.Array(typesig.String()), inner1, inner2)

	enc, err := Encode(cfg, outer)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(cfg, typesig.Array(typesig.Array(typesig.String())), enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(outer) {
		t.Errorf("roundtrip mismatch: got %v, want %v", decoded, outer)
	}
}

func TestArrayRejectsMisalignedFixedBody(t *testing.T) {
	cfg := config.New()
	// 3 bytes can't hold a whole number of uint32 (width 4) elements.
	if _, err := Decode(cfg, typesig.Array(typesig.Uint32()), []byte{1, 2, 3}); err == nil {
		t.Errorf("decode should fail on a body length not a multiple of element width")
	}
}

func TestManyElementsForceWiderOffsets(t *testing.T) {
	cfg := config.New()
	var elems []*variant.Variant
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	for i := 0; i < 3; i++ {
		elems = append(elems, variant.String(string(long)))
	}
	arr := variant.Array(typesig.String(), elems...)
	enc, err := Encode(cfg, arr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(cfg, typesig.Array(typesig.String()), enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(arr) {
		t.Errorf("roundtrip mismatch for large elements forcing wider offsets")
	}
}
