// Package visitor defines the boundary contract between the govariant
// engine and an external schema binding (spec.md §4.9/§1): the reflective
// mapping from a user's typed record to a sequence of encode/decode calls
// stays out of scope, but the calls themselves are specified here so any
// binding can drive the engine without depending on codec internals.
//
// govariant's core is built as a tagged-tree engine (variant.Variant in and
// out — see DESIGN.md's Design Note on tagged-tree vs visitor cores),
// so this package's Visitor is the second, callback-style entry point: a
// binding can walk a schema and call Visitor methods directly instead of
// building a variant.Variant tree up front. TreeBinding (treebinding.go)
// drives a Visitor off a variant.Variant tree, and Builder implements
// Visitor by rebuilding a tree, exercising the contract concretely without
// requiring a real reflective binding.
package visitor

import "govariant/gerrors"

// Visitor is the capability set spec.md §4.9 lists: scalars, the
// byte_sequence/string distinction, and the three container shapes
// (maybe, array, struct) plus the self-describing variant wrapper.
// TreeBinding.Walk calls it in the encode direction; Builder implements it
// for the decode direction.
//
// Unsupported capabilities (char, free-form map, tagged sum without a
// signature) are not part of this interface at all: a binding that needs
// one must fail with gerrors.UnsupportedShape itself, per spec.md §4.9's
// "fail with a dedicated error kind" rule.
type Visitor interface {
	VisitBool(v bool) error
	VisitU8(v uint8) error
	VisitI16(v int16) error
	VisitU16(v uint16) error
	VisitI32(v int32) error
	VisitU32(v uint32) error
	VisitI64(v int64) error
	VisitU64(v uint64) error
	VisitF64(v float64) error

	// VisitString visits a NUL-terminated UTF-8 scalar (string,
	// object-path, or signature, per spec.md §3 — the caller disambiguates
	// via the type it is walking).
	VisitString(v string) error

	// VisitByteSequence visits a length-delimited byte array with no
	// terminator, distinct from VisitString per spec.md §4.9.
	VisitByteSequence(v []byte) error

	// BeginMaybe/EndMaybe bracket an optional value. present tells the
	// binding whether to expect a nested visit call before EndMaybe.
	BeginMaybe(present bool) error
	EndMaybe() error

	// BeginArray/EndArray bracket a homogeneous sequence. elementSig is
	// the element type's signature string, letting the binding resolve
	// its per-element visitor without a side channel.
	BeginArray(elementSig string, length int) error
	VisitElement(index int) error
	EndArray() error

	// BeginStruct/EndStruct bracket a fixed-arity heterogeneous record.
	BeginStruct(fieldCount int) error
	VisitField(index int, fieldSig string) error
	EndStruct() error

	// BeginVariant/EndVariant bracket a self-describing "v" value whose
	// payload signature is only known once the payload has been read.
	BeginVariant(signature string) error
	EndVariant() error
}

// unsupportedCapability is the dedicated error kind spec.md §4.9 requires
// for char, free-form maps, and signature-less tagged sums — capabilities
// this Visitor contract deliberately does not expose.
func unsupportedCapability(name string) error {
	return gerrors.New(gerrors.UnsupportedShape, "visitor: capability %q is not supported", name)
}

// UnsupportedChar reports the "char" capability spec.md §4.9 names as
// explicitly out of scope. Bindings that encounter a schema node requiring
// it should call this rather than inventing their own error.
func UnsupportedChar() error { return unsupportedCapability("char") }

// UnsupportedFreeFormMap reports the free-form (non-dict-entry-array) map
// capability spec.md §4.9 excludes.
func UnsupportedFreeFormMap() error { return unsupportedCapability("free-form map") }

// UnsupportedTaggedSum reports a tagged sum type with no GVariant signature
// to carry its discriminant, per spec.md §4.9.
func UnsupportedTaggedSum() error { return unsupportedCapability("tagged sum without signature") }
