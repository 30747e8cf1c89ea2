package govariant

import "testing"

func TestPublicAPIRoundtrip(t *testing.T) {
	cfg := NewConfig()
	v := Struct(String("foo"), Int32(-1))
	enc, err := Encode(cfg, v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	ty, err := ParseSignature("(si)")
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}
	decoded, err := DecodeFromSlice(cfg, ty, enc)
	if err != nil {
		t.Fatalf("DecodeFromSlice: %v", err)
	}
	if !decoded.Equal(v) {
		t.Errorf("round-trip mismatch: got %v, want %v", decoded, v)
	}
}

func TestPublicAPISizeMatchesEncode(t *testing.T) {
	cfg := NewConfig().WithEndian(BigEndian)
	v := Array(ParseSignatureMustUint32(), Uint32(1), Uint32(2))
	enc, err := Encode(cfg, v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	size, err := Size(cfg, v)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != int64(len(enc)) {
		t.Errorf("Size() = %d, want %d", size, len(enc))
	}
}

func ParseSignatureMustUint32() *Type {
	ty, err := ParseSignature("u")
	if err != nil {
		panic(err)
	}
	return ty
}
