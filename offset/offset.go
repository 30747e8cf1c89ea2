// Package offset implements GVariant's framing-offset arithmetic: the
// single routine every container (array, structure) defers to for
// choosing an offset width, padding to alignment, and reading the offset
// table at the tail of a variable-sized container.
//
// Grounded on gvariantOffsetSize/writeOffset in the teacher's
// ostree_checksum.go and on pad_align in the original Rust ser.rs, unified
// into one routine that (unlike the teacher's 1-byte-only ostree code)
// supports all four GVariant offset widths for both encode and decode.
package offset

import (
	"encoding/binary"

	"govariant/gerrors"
)

// Width returns the framing-offset width (1, 2, 4 or 8 bytes) for a
// container whose total length is containerLen. GVariant picks width from
// the container's total size, not from the largest offset value, so a
// container may legally carry wider offsets than its largest value
// strictly requires if an outer context pads it.
func Width(containerLen int64) int {
	switch {
	case containerLen <= 0xFF:
		return 1
	case containerLen <= 0xFFFF:
		return 2
	case containerLen <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// Pad returns the number of zero-fill bytes needed so that a value of the
// given alignment (a power of two, 1/2/4/8) can be placed starting at
// cursor.
func Pad(cursor int64, alignment int) int64 {
	if alignment <= 1 {
		return 0
	}
	a := int64(alignment)
	return (a - (cursor % a)) % a
}

// AppendWidth appends an unsigned little-endian framing offset of the
// given width to buf, returning the extended slice.
func AppendWidth(buf []byte, value int64, width int) []byte {
	switch width {
	case 1:
		return append(buf, byte(value))
	case 2:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(value))
		return append(buf, b[:]...)
	case 4:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(value))
		return append(buf, b[:]...)
	case 8:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(value))
		return append(buf, b[:]...)
	default:
		return buf
	}
}

// ReadWidth reads a single unsigned little-endian framing offset of the
// given width from b, which must have at least width bytes.
func ReadWidth(b []byte, width int) (int64, error) {
	if len(b) < width {
		return 0, gerrors.New(gerrors.UnexpectedEOF, "offset table truncated: need %d bytes, have %d", width, len(b))
	}
	switch width {
	case 1:
		return int64(b[0]), nil
	case 2:
		return int64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return int64(binary.LittleEndian.Uint32(b)), nil
	case 8:
		return int64(binary.LittleEndian.Uint64(b)), nil
	default:
		return 0, gerrors.New(gerrors.BadSignature, "unsupported offset width %d", width)
	}
}

// ReadAt reads the i'th framing offset (0-based, forward order) out of an
// offset table that occupies the tail of window, given the table's element
// width and the total element count. Used by the array engine, whose
// offset table is stored forward.
func ReadAt(window []byte, width, count, i int) (int64, error) {
	if i < 0 || i >= count {
		return 0, gerrors.New(gerrors.OffsetOverflow, "offset index %d out of range [0,%d)", i, count)
	}
	tableStart := len(window) - count*width
	if tableStart < 0 {
		return 0, gerrors.New(gerrors.LengthUnderflow, "offset table of %d entries does not fit in %d-byte window", count, len(window))
	}
	start := tableStart + i*width
	return ReadWidth(window[start:start+width], width)
}

// ReadAtReverse reads the i'th framing offset (0-based) out of a
// reverse-ordered offset table: offset[i] sits at the (i+1)'th slot from
// the tail. Used by the structure engine, whose offset table is stored in
// reverse so it can be indexed from the end without knowing the field
// count in advance.
func ReadAtReverse(window []byte, width, i int) (int64, error) {
	if i < 0 {
		return 0, gerrors.New(gerrors.OffsetOverflow, "negative reverse offset index %d", i)
	}
	start := len(window) - (i+1)*width
	if start < 0 {
		return 0, gerrors.New(gerrors.LengthUnderflow, "reverse offset index %d does not fit in %d-byte window", i, len(window))
	}
	return ReadWidth(window[start:start+width], width)
}
