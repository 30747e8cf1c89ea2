// Dict-entry engine: GVariant's {K V} pair, used exclusively as an array
// element type to form dictionaries (a{sv} etc). Per spec.md's GLOSSARY a
// dict-entry is named but never given its own operation in §4; it is
// supplemented here (SPEC_FULL.md §"Supplemented features" #2) as a
// 2-field structure, since its layout rule is identical to the structure
// engine's: alignment is max(align(K), align(V)), and it is fixed-size
// only if both K and V are.
//
// Grounded on the {sv}-shaped fixtures in original_source/tests/
// gvariant_js.rs.
package codec

import (
	"govariant/config"
	"govariant/gerrors"
	"govariant/typesig"
	"govariant/variant"
)

// EncodeDictEntry encodes a (key, value) pair using the structure
// engine's layout rule.
func EncodeDictEntry(cfg config.Config, key, value *variant.Variant) ([]byte, error) {
	return EncodeStruct(cfg, []*variant.Variant{key, value})
}

// DecodeDictEntry decodes a dict-entry of the given key/value types from
// window.
func DecodeDictEntry(cfg config.Config, keyType, valueType *typesig.Type, window []byte) (key, value *variant.Variant, err error) {
	fields, err := DecodeStruct(cfg, []*typesig.Type{keyType, valueType}, window)
	if err != nil {
		return nil, nil, gerrors.Wrap(gerrors.OffsetOverflow, err, "decoding dict-entry")
	}
	if len(fields) != 2 {
		return nil, nil, gerrors.New(gerrors.UnsupportedShape, "dict-entry decoded %d fields, want 2", len(fields))
	}
	return fields[0], fields[1], nil
}

// OrderedMap is a convenience view over an a{KV} array: the decoded
// key/value pairs in on-the-wire order (GVariant does not sort
// dictionaries; dconf and D-Bus callers that need sorted output do so
// above this layer).
type OrderedMap struct {
	Keys   []*variant.Variant
	Values []*variant.Variant
}

// NewOrderedMapFromArray splits an array of DictEntry Variants (as produced
// by DecodeArray against a KindDictEntry element type) into parallel
// key/value slices.
func NewOrderedMapFromArray(entries []*variant.Variant) (*OrderedMap, error) {
	m := &OrderedMap{Keys: make([]*variant.Variant, len(entries)), Values: make([]*variant.Variant, len(entries))}
	for i, e := range entries {
		if e.Kind() != typesig.KindDictEntry {
			return nil, gerrors.New(gerrors.UnsupportedShape, "element %d is not a dict-entry", i)
		}
		items := e.Items()
		if len(items) != 2 {
			return nil, gerrors.New(gerrors.UnsupportedShape, "dict-entry %d has %d items, want 2", i, len(items))
		}
		m.Keys[i] = items[0]
		m.Values[i] = items[1]
	}
	return m, nil
}
