// Structure engine (C6): fixed/variable-mixed tuple-record layout.
//
// Grounded on buildFileHeader/buildDirMeta in the teacher's
// ostree_checksum.go (hand-rolled (uuuus a(ayay)) / (uuu a(ayay)) layout)
// and on SerStruct in original_source/src/ser.rs / StructDeAccess in
// src/de/struc.rs, generalized to all four offset widths per spec.md §9
// Open Question 2 (the teacher and the original only handle 1-byte
// offsets).
package codec

import (
	"govariant/config"
	"govariant/gerrors"
	"govariant/offset"
	"govariant/typesig"
	"govariant/variant"
)

// EncodeStruct serialises fields in declaration order. Per spec.md §4.6,
// every variable-sized field except the last records its ending offset;
// the table is written in reverse order at the tail (GVariant's
// structure-offset convention, distinct from the array engine's forward
// order).
func EncodeStruct(cfg config.Config, fields []*variant.Variant) ([]byte, error) {
	if len(fields) == 0 {
		// GVariant's unit type "()" encodes as a single zero byte.
		return []byte{0}, nil
	}

	var body []byte
	var cursor int64
	var framings []int64

	for i, f := range fields {
		ft := f.Type()
		pad := offset.Pad(cursor, ft.Alignment())
		body = append(body, make([]byte, pad)...)
		cursor += pad

		enc, err := Encode(cfg, f)
		if err != nil {
			return nil, gerrors.Wrap(gerrors.IO, err, "encoding struct field %d", i)
		}
		body = append(body, enc...)
		cursor += int64(len(enc))

		last := i == len(fields)-1
		if !ft.FixedSize() && !last {
			framings = append(framings, cursor)
		}
	}

	if len(framings) == 0 {
		// A fixed-size structure is padded out to a multiple of its
		// alignment, so its length equals typesig's FixedWidth.
		if st := variant.Struct(fields...).Type(); st.FixedSize() {
			body = append(body, make([]byte, offset.Pad(cursor, st.Alignment()))...)
		}
		return body, nil
	}

	width := resolveArrayOffsetWidth(cfg, cursor, len(framings))
	// Reverse order: offset[0] (first recorded, i.e. earliest field) ends
	// up nearest the tail-most slot per spec.md's reverse-indexing rule
	// (offset[i] at e-(i+1)*w), so we append in reverse of recording order.
	for i := len(framings) - 1; i >= 0; i-- {
		body = offset.AppendWidth(body, framings[i], width)
	}
	return body, nil
}

// DecodeStruct reconstructs struct fields of the given field types from
// window.
func DecodeStruct(cfg config.Config, fieldTypes []*typesig.Type, window []byte) ([]*variant.Variant, error) {
	if len(fieldTypes) == 0 {
		return nil, nil
	}

	numVarNonLast := 0
	for i, ft := range fieldTypes {
		if !ft.FixedSize() && i != len(fieldTypes)-1 {
			numVarNonLast++
		}
	}

	w := 0
	if numVarNonLast > 0 {
		w = offset.Width(int64(len(window)))
	}

	fields := make([]*variant.Variant, len(fieldTypes))
	var cursor int64
	varNonLastSeen := 0

	for i, ft := range fieldTypes {
		cursor = alignUp(cursor, int64(ft.Alignment()))
		last := i == len(fieldTypes)-1

		var fieldEnd int64
		switch {
		case ft.FixedSize():
			fieldEnd = cursor + ft.FixedWidth()
		case last:
			fieldEnd = int64(len(window)) - int64(numVarNonLast)*int64(w)
		default:
			off, err := offset.ReadAtReverse(window, w, varNonLastSeen)
			if err != nil {
				return nil, err
			}
			fieldEnd = off
			varNonLastSeen++
		}

		if fieldEnd < cursor || fieldEnd > int64(len(window)) {
			return nil, gerrors.New(gerrors.OffsetOverflow, "struct field %d occupies [%d,%d), out of window [0,%d)", i, cursor, fieldEnd, len(window))
		}

		val, err := Decode(cfg, ft, window[cursor:fieldEnd])
		if err != nil {
			return nil, err
		}
		fields[i] = val
		cursor = fieldEnd
	}

	return fields, nil
}
