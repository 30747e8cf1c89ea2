// Array engine (C5): fixed-width and variable-width array layout.
//
// Grounded on serializeXattrs/gvariantOffsetSize in the teacher's
// ostree_checksum.go (a(ayay) encoding) and on SerSeq in
// original_source/src/ser.rs plus deserialize_seq in src/de/cursor.rs,
// generalized to all four offset widths (the teacher's ostree code and
// the original both special-case 1-byte offsets only).
package codec

import (
	"govariant/config"
	"govariant/gerrors"
	"govariant/offset"
	"govariant/typesig"
	"govariant/variant"
)

// EncodeArray serialises an array of elemType. An empty array encodes as
// zero bytes (spec.md §4.5 boundary rule).
func EncodeArray(cfg config.Config, elemType *typesig.Type, elems []*variant.Variant) ([]byte, error) {
	if len(elems) == 0 {
		return nil, nil
	}

	fixed := elemType.FixedSize()
	var body []byte
	var framings []int64
	var cursor int64

	for _, el := range elems {
		pad := offset.Pad(cursor, elemType.Alignment())
		body = append(body, make([]byte, pad)...)
		cursor += pad

		enc, err := Encode(cfg, el)
		if err != nil {
			return nil, gerrors.Wrap(gerrors.IO, err, "encoding array element")
		}
		body = append(body, enc...)
		cursor += int64(len(enc))
		if !fixed {
			framings = append(framings, cursor)
		}
	}

	if fixed {
		return body, nil
	}

	width := resolveArrayOffsetWidth(cfg, cursor, len(framings))
	for _, f := range framings {
		body = offset.AppendWidth(body, f, width)
	}
	return body, nil
}

// resolveArrayOffsetWidth picks the offset width for a variable array by
// iterating candidate widths until the total (body+table) fits, matching
// gvariantOffsetSize's loop in the teacher's ostree_checksum.go.
func resolveArrayOffsetWidth(cfg config.Config, bodySize int64, numOffsets int) int {
	if w := cfg.OffsetWidthOverride(); w != 0 {
		return w
	}
	for _, w := range []int{1, 2, 4, 8} {
		total := bodySize + int64(numOffsets)*int64(w)
		if w == 8 || total <= widthCeiling(w) {
			return w
		}
	}
	return 8
}

func widthCeiling(w int) int64 {
	switch w {
	case 1:
		return 0xFF
	case 2:
		return 0xFFFF
	case 4:
		return 0xFFFFFFFF
	default:
		return 1<<63 - 1
	}
}

// DecodeArray reconstructs the elements of an array of elemType from
// window, per spec.md §4.5's decode path.
func DecodeArray(cfg config.Config, elemType *typesig.Type, window []byte) ([]*variant.Variant, error) {
	if len(window) == 0 {
		return nil, nil
	}

	if elemType.FixedSize() {
		width := elemType.FixedWidth()
		if width <= 0 || int64(len(window))%width != 0 {
			return nil, gerrors.New(gerrors.LengthUnderflow, "array body length %d is not a multiple of fixed element width %d", len(window), width)
		}
		count := int64(len(window)) / width
		elems := make([]*variant.Variant, count)
		for i := int64(0); i < count; i++ {
			el, err := Decode(cfg, elemType, window[i*width:(i+1)*width])
			if err != nil {
				return nil, err
			}
			elems[i] = el
		}
		return elems, nil
	}

	w := offset.Width(int64(len(window)))
	lastOff, err := offset.ReadWidth(window[len(window)-w:], w)
	if err != nil {
		return nil, err
	}
	fstart := lastOff
	if fstart < 0 || fstart > int64(len(window)) {
		return nil, gerrors.New(gerrors.OffsetOverflow, "array offset-table start %d out of bounds [0,%d]", fstart, len(window))
	}
	tableBytes := int64(len(window)) - fstart
	if tableBytes <= 0 || tableBytes%int64(w) != 0 {
		return nil, gerrors.New(gerrors.LengthUnderflow, "array offset table of %d bytes is not a multiple of width %d", tableBytes, w)
	}
	count := int(tableBytes / int64(w))

	elems := make([]*variant.Variant, count)
	prevEnd := int64(0)
	for i := 0; i < count; i++ {
		off, err := offset.ReadAt(window, w, count, i)
		if err != nil {
			return nil, err
		}
		start := alignUp(prevEnd, int64(elemType.Alignment()))
		if off < start || off > fstart {
			return nil, gerrors.New(gerrors.OffsetOverflow, "array element %d offset %d out of range [%d,%d]", i, off, start, fstart)
		}
		el, err := Decode(cfg, elemType, window[start:off])
		if err != nil {
			return nil, err
		}
		elems[i] = el
		prevEnd = off
	}
	return elems, nil
}

func alignUp(cursor, alignment int64) int64 {
	if alignment <= 1 {
		return cursor
	}
	pad := (alignment - (cursor % alignment)) % alignment
	return cursor + pad
}
