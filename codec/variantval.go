// Variant engine (C8): the self-describing `v` container.
//
// Grounded on the enum-dispatch deserializer in
// original_source/src/de/variant.rs (EnumDeAccess scans backward from the
// end for the 0x00 signature separator) and the discriminant-free
// Variant::Vec/Option handling in src/variant.rs.
package codec

import (
	"govariant/config"
	"govariant/gerrors"
	"govariant/typesig"
	"govariant/variant"
)

// EncodeVariantVal encodes a `v` container: payload (at alignment 0 of its
// own sub-container), then 0x00, then the ASCII signature with no
// terminator.
func EncodeVariantVal(cfg config.Config, inner *variant.Variant) ([]byte, error) {
	payload, err := Encode(cfg, inner)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.IO, err, "encoding variant payload")
	}
	sig := inner.SignatureString()
	out := make([]byte, 0, len(payload)+1+len(sig))
	out = append(out, payload...)
	out = append(out, 0)
	out = append(out, sig...)
	return out, nil
}

// DecodeVariantVal decodes a `v` container from window: the signature is
// recovered by scanning backward from the end for the 0x00 separator (the
// signature itself can never contain a NUL), then parsed into a type tree
// that drives recursive decoding of the payload.
func DecodeVariantVal(cfg config.Config, window []byte) (*variant.Variant, error) {
	sep := -1
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == 0 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, gerrors.New(gerrors.InvalidTerminator, "variant has no 0x00 signature separator")
	}
	sig := string(window[sep+1:])
	ty, err := typesig.Parse(sig)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.BadSignature, err, "parsing variant signature %q", sig)
	}
	inner, err := Decode(cfg, ty, window[:sep])
	if err != nil {
		return nil, err
	}
	return variant.VariantVal(inner), nil
}
