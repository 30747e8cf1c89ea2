// Package codec implements the GVariant encode/decode engine: primitive
// scalars (this file), arrays, structures, maybes, variants, and
// dict-entries, all built atop the offset package's alignment/framing
// arithmetic and dispatched by a parsed typesig.Type tree.
//
// Grounded on original_source/src/de/cursor.rs (per-kind deserialize_*
// methods) and src/ser.rs (per-kind serialize_* methods), corrected per
// spec.md §9 Open Question 1: the original's serialize_u32/i32/i64 report
// wrong Properties.size (3/3/4) in one iteration of ser.rs; this
// implementation always uses the true widths (4/4/8).
package codec

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"govariant/config"
	"govariant/gerrors"
)

func byteOrder(cfg config.Config) binary.ByteOrder {
	if cfg.Endian() == config.Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// --- Encode ---------------------------------------------------------------

func EncodeBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

func EncodeByte(b uint8) []byte { return []byte{b} }

func EncodeInt16(cfg config.Config, v int16) []byte {
	buf := make([]byte, 2)
	byteOrder(cfg).PutUint16(buf, uint16(v))
	return buf
}

func EncodeUint16(cfg config.Config, v uint16) []byte {
	buf := make([]byte, 2)
	byteOrder(cfg).PutUint16(buf, v)
	return buf
}

func EncodeInt32(cfg config.Config, v int32) []byte {
	buf := make([]byte, 4)
	byteOrder(cfg).PutUint32(buf, uint32(v))
	return buf
}

func EncodeUint32(cfg config.Config, v uint32) []byte {
	buf := make([]byte, 4)
	byteOrder(cfg).PutUint32(buf, v)
	return buf
}

func EncodeInt64(cfg config.Config, v int64) []byte {
	buf := make([]byte, 8)
	byteOrder(cfg).PutUint64(buf, uint64(v))
	return buf
}

func EncodeUint64(cfg config.Config, v uint64) []byte {
	buf := make([]byte, 8)
	byteOrder(cfg).PutUint64(buf, v)
	return buf
}

func EncodeFloat64(cfg config.Config, v float64) []byte {
	buf := make([]byte, 8)
	byteOrder(cfg).PutUint64(buf, math.Float64bits(v))
	return buf
}

// EncodeString appends the mandatory terminating 0x00, which is included
// in the value's encoded length per spec.md §3 invariant 2.
func EncodeString(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	buf[len(s)] = 0
	return buf
}

// EncodeBytes encodes a byte_sequence: raw bytes, no terminator, distinct
// from EncodeString per the visitor contract (C9).
func EncodeBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// --- Decode -----------------------------------------------------------

func DecodeBool(cfg config.Config, window []byte) (bool, error) {
	if len(window) != 1 {
		return false, gerrors.New(gerrors.UnexpectedEOF, "bool requires exactly 1 byte, got %d", len(window))
	}
	if cfg.Strict() && window[0] != 0 && window[0] != 1 {
		return false, gerrors.New(gerrors.InvalidBool, "strict mode: boolean byte %#x is neither 0 nor 1", window[0])
	}
	return window[0] != 0, nil
}

func DecodeByte(window []byte) (uint8, error) {
	if len(window) != 1 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "byte requires exactly 1 byte, got %d", len(window))
	}
	return window[0], nil
}

func DecodeInt16(cfg config.Config, window []byte) (int16, error) {
	if len(window) != 2 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "int16 requires exactly 2 bytes, got %d", len(window))
	}
	return int16(byteOrder(cfg).Uint16(window)), nil
}

func DecodeUint16(cfg config.Config, window []byte) (uint16, error) {
	if len(window) != 2 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "uint16 requires exactly 2 bytes, got %d", len(window))
	}
	return byteOrder(cfg).Uint16(window), nil
}

func DecodeInt32(cfg config.Config, window []byte) (int32, error) {
	if len(window) != 4 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "int32 requires exactly 4 bytes, got %d", len(window))
	}
	return int32(byteOrder(cfg).Uint32(window)), nil
}

func DecodeUint32(cfg config.Config, window []byte) (uint32, error) {
	if len(window) != 4 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "uint32 requires exactly 4 bytes, got %d", len(window))
	}
	return byteOrder(cfg).Uint32(window), nil
}

func DecodeInt64(cfg config.Config, window []byte) (int64, error) {
	if len(window) != 8 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "int64 requires exactly 8 bytes, got %d", len(window))
	}
	return int64(byteOrder(cfg).Uint64(window)), nil
}

func DecodeUint64(cfg config.Config, window []byte) (uint64, error) {
	if len(window) != 8 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "uint64 requires exactly 8 bytes, got %d", len(window))
	}
	return byteOrder(cfg).Uint64(window), nil
}

func DecodeFloat64(cfg config.Config, window []byte) (float64, error) {
	if len(window) != 8 {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "float64 requires exactly 8 bytes, got %d", len(window))
	}
	return math.Float64frombits(byteOrder(cfg).Uint64(window)), nil
}

// DecodeString decodes a NUL-terminated string. The terminator must be the
// last byte of window (window is the exact byte range the container
// engine carved out for this field); non-strict mode substitutes invalid
// UTF-8 sequences, strict mode rejects them.
func DecodeString(cfg config.Config, window []byte) (string, error) {
	if cfg.MaxStringLen() > 0 && len(window) > cfg.MaxStringLen() {
		return "", gerrors.New(gerrors.OverlongString, "string length %d exceeds max_string_len %d", len(window), cfg.MaxStringLen())
	}
	if len(window) == 0 {
		return "", gerrors.New(gerrors.InvalidTerminator, "string window is empty, missing terminator")
	}
	if window[len(window)-1] != 0 {
		return "", gerrors.New(gerrors.InvalidTerminator, "string is not NUL-terminated")
	}
	body := window[:len(window)-1]
	if cfg.Strict() && !utf8.Valid(body) {
		return "", gerrors.New(gerrors.UnsupportedShape, "strict mode: string is not valid UTF-8")
	}
	return fixUTF8(body), nil
}

// DecodeBytes decodes a byte_sequence: the raw window, no terminator
// expected or stripped.
func DecodeBytes(window []byte) []byte {
	out := make([]byte, len(window))
	copy(out, window)
	return out
}

func fixUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// Lossy replacement, mirroring String::from_utf8_lossy in the original.
	return string([]rune(string(b)))
}
