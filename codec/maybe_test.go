package codec

import (
	"bytes"
	"testing"

	"govariant/config"
	"govariant/typesig"
	"govariant/variant"
)

func TestMaybeStringScenario2(t *testing.T) {
	// spec.md §8 scenario 2: m s, Some("hello world") ->
	// 68 65 6C 6C 6F 20 77 6F 72 6C 64 00 00
	cfg := config.New()
	v := variant.Some(variant.String("hello world"))
	got, err := Encode(cfg, v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := append([]byte("hello world\x00"), 0)
	if !bytes.Equal(got, want) {
		t.Errorf("encode = % x, want % x", got, want)
	}

	decoded, err := Decode(cfg, typesig.Maybe(typesig.String()), got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(v) {
		t.Errorf("decoded %v != original %v", decoded, v)
	}
}

func TestMaybeNone(t *testing.T) {
	cfg := config.New()
	v := variant.None(typesig.Uint32())
	got, err := Encode(cfg, v)
	if err != nil || len(got) != 0 {
		t.Errorf("None should encode to zero bytes, got % x, err=%v", got, err)
	}
	decoded, err := Decode(cfg, typesig.Maybe(typesig.Uint32()), got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.IsPresent() {
		t.Errorf("decoded should be None")
	}
}

func TestMaybeFixedInnerNoTrailingZero(t *testing.T) {
	cfg := config.New()
	v := variant.Some(variant.Uint32(42))
	got, err := Encode(cfg, v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("Some(fixed) should not append a trailing zero: got % x, len=%d", got, len(got))
	}
	decoded, err := Decode(cfg, typesig.Maybe(typesig.Uint32()), got)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(v) {
		t.Errorf("decoded %v != original %v", decoded, v)
	}
}

func TestMaybeMissingTerminatorError(t *testing.T) {
	cfg := config.New()
	// Variable inner without the trailing 0x00.
	if _, err := Decode(cfg, typesig.Maybe(typesig.String()), []byte("no-terminator")); err == nil {
		t.Errorf("decode should fail when a variable-inner maybe lacks its trailing 0x00")
	}
}

func TestMaybeOfMaybeRoundtrip(t *testing.T) {
	cfg := config.New()
	v := variant.Some(variant.Some(variant.String("x")))
	enc, err := Encode(cfg, v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	ty := typesig.Maybe(typesig.Maybe(typesig.String()))
	decoded, err := Decode(cfg, ty, enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Equal(v) {
		t.Errorf("roundtrip mismatch: got %v, want %v", decoded, v)
	}
}
