package codec

import (
	"bytes"
	"testing"

	"govariant/config"
)

func TestScalarRoundtripLittleEndian(t *testing.T) {
	cfg := config.New()

	if got, err := DecodeBool(cfg, EncodeBool(true)); err != nil || got != true {
		t.Errorf("bool roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeByte(EncodeByte(200)); err != nil || got != 200 {
		t.Errorf("byte roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeInt16(cfg, EncodeInt16(cfg, -1234)); err != nil || got != -1234 {
		t.Errorf("int16 roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeUint16(cfg, EncodeUint16(cfg, 50000)); err != nil || got != 50000 {
		t.Errorf("uint16 roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeInt32(cfg, EncodeInt32(cfg, -1)); err != nil || got != -1 {
		t.Errorf("int32 roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeUint32(cfg, EncodeUint32(cfg, 0xDEADBEEF)); err != nil || got != 0xDEADBEEF {
		t.Errorf("uint32 roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeInt64(cfg, EncodeInt64(cfg, -1)); err != nil || got != -1 {
		t.Errorf("int64 roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeUint64(cfg, EncodeUint64(cfg, 0x0102030405060708)); err != nil || got != 0x0102030405060708 {
		t.Errorf("uint64 roundtrip = %v,%v", got, err)
	}
	if got, err := DecodeFloat64(cfg, EncodeFloat64(cfg, 3.5)); err != nil || got != 3.5 {
		t.Errorf("float64 roundtrip = %v,%v", got, err)
	}
}

func TestEndiannessSymmetry(t *testing.T) {
	// original_source/tests/endianness.rs: same value under big is the
	// byte-reverse of little, for multi-byte scalars.
	little := config.New().WithEndian(config.Little)
	big := config.New().WithEndian(config.Big)

	le := EncodeUint32(little, 0x01020304)
	be := EncodeUint32(big, 0x01020304)
	if !bytes.Equal(be, reverse(le)) {
		t.Errorf("big-endian encoding %x is not the byte-reverse of little-endian %x", be, le)
	}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

func TestScenario7BigEndianUint16(t *testing.T) {
	// spec.md §8 scenario 7: q big-endian, 10752 -> 2A 00.
	cfg := config.New().WithEndian(config.Big)
	got := EncodeUint16(cfg, 10752)
	want := []byte{0x2A, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeUint16(big, 10752) = % x, want % x", got, want)
	}
	decoded, err := DecodeUint16(cfg, got)
	if err != nil || decoded != 10752 {
		t.Errorf("DecodeUint16(big, % x) = %v,%v, want 10752,nil", got, decoded, err)
	}
}

func TestStringEncodingScenario1(t *testing.T) {
	// spec.md §8 scenario 1.
	got := EncodeString("hello world")
	want := []byte("hello world\x00")
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeString = % x, want % x", got, want)
	}
	s, err := DecodeString(config.New(), got)
	if err != nil || s != "hello world" {
		t.Errorf("DecodeString = %q,%v, want \"hello world\",nil", s, err)
	}
}

func TestDecodeStringMissingTerminator(t *testing.T) {
	if _, err := DecodeString(config.New(), []byte("no-nul")); err == nil {
		t.Errorf("DecodeString should fail without a terminator")
	}
}

func TestDecodeStringEmpty(t *testing.T) {
	s, err := DecodeString(config.New(), []byte{0})
	if err != nil || s != "" {
		t.Errorf("DecodeString(just NUL) = %q,%v, want \"\",nil", s, err)
	}
}

func TestDecodeStringOverlong(t *testing.T) {
	cfg := config.New().WithMaxStringLen(4)
	long := append([]byte("hello"), 0)
	if _, err := DecodeString(cfg, long); err == nil {
		t.Errorf("DecodeString should fail when exceeding max_string_len")
	}
}

func TestByteSequenceHasNoTerminator(t *testing.T) {
	b := EncodeBytes([]byte{1, 2, 3})
	if len(b) != 3 {
		t.Errorf("EncodeBytes should not append a terminator, got % x", b)
	}
	got := DecodeBytes(b)
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("DecodeBytes = % x, want {01 02 03}", got)
	}
}

func TestStrictBoolRejectsNonCanonical(t *testing.T) {
	strict := config.New().WithStrict(true)
	if _, err := DecodeBool(strict, []byte{5}); err == nil {
		t.Errorf("strict mode should reject a boolean byte that is neither 0 nor 1")
	}
	lenient := config.New()
	got, err := DecodeBool(lenient, []byte{5})
	if err != nil || got != true {
		t.Errorf("non-strict mode should coerce non-zero to true, got %v,%v", got, err)
	}
}

func TestWrongWidthErrors(t *testing.T) {
	cfg := config.New()
	if _, err := DecodeInt32(cfg, []byte{1, 2}); err == nil {
		t.Errorf("DecodeInt32 with wrong width should fail")
	}
	if _, err := DecodeUint64(cfg, []byte{1, 2, 3}); err == nil {
		t.Errorf("DecodeUint64 with wrong width should fail")
	}
}
