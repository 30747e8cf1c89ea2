// Maybe engine (C7): optional value, inner-sized or trailing-zero encoded.
//
// Grounded on SomeDeserializer / deserialize_option in
// original_source/src/de/some.rs and src/de/cursor.rs.
package codec

import (
	"govariant/config"
	"govariant/gerrors"
	"govariant/typesig"
	"govariant/variant"
)

// EncodeMaybe encodes a Maybe value. None emits nothing. Some(x) emits x's
// encoding alone if x's type is fixed-size, or x's encoding followed by a
// single 0x00 if variable-size (the trailing zero is what lets the
// decoder distinguish "present, ends exactly at the container boundary"
// from "absent").
func EncodeMaybe(cfg config.Config, v *variant.Variant) ([]byte, error) {
	if !v.IsPresent() {
		return nil, nil
	}
	inner := v.Elem()
	enc, err := Encode(cfg, inner)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.IO, err, "encoding maybe payload")
	}
	if inner.Type().FixedSize() {
		return enc, nil
	}
	return append(enc, 0), nil
}

// DecodeMaybe decodes a Maybe of innerType from window.
func DecodeMaybe(cfg config.Config, innerType *typesig.Type, window []byte) (*variant.Variant, error) {
	if len(window) == 0 {
		return variant.None(innerType), nil
	}
	if innerType.FixedSize() {
		inner, err := Decode(cfg, innerType, window)
		if err != nil {
			return nil, err
		}
		return variant.Some(inner), nil
	}
	if window[len(window)-1] != 0 {
		return nil, gerrors.New(gerrors.InvalidTerminator, "maybe payload is not terminated with 0x00")
	}
	inner, err := Decode(cfg, innerType, window[:len(window)-1])
	if err != nil {
		return nil, err
	}
	return variant.Some(inner), nil
}
