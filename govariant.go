// Package govariant implements the GVariant binary serialization format
// used by GLib, D-Bus, and OSTree: a self-framing, alignment-aware wire
// format for encoding scalars, strings, optionals, arrays, structures, and
// self-describing variants without an external schema. This file is the
// package's public surface; the engine itself lives in the ioadapter,
// config, typesig, variant, offset, gerrors, codec, and visitor
// subpackages, each scoped to one concern per spec.md §2.
//
// The reflective mapping from a caller's own Go types to a sequence of
// encode/decode calls is out of scope (spec.md §1); callers either build a
// Variant tree directly or drive the visitor package's Visitor contract
// from their own schema binding.
package govariant

import (
	"io"

	"govariant/codec"
	"govariant/config"
	"govariant/gerrors"
	"govariant/ioadapter"
	"govariant/typesig"
	"govariant/variant"
)

// Config is the immutable set of codec options: byte order, string-length
// cap, offset-width override, and strict-mode decoding. Build one with
// NewConfig and the With* chaining methods.
type Config = config.Config

// Endian selects the byte order applied to multi-byte scalars.
type Endian = config.Endian

const (
	// LittleEndian is GVariant's native byte order and the default.
	LittleEndian = config.Little
	// BigEndian supports OSTree-style records written in network byte order.
	BigEndian = config.Big
)

// NewConfig returns the default configuration: little-endian, an 8192-byte
// string cap, derived offset widths, non-strict decoding.
func NewConfig() Config { return config.New() }

// Variant is a single GVariant value together with enough structure to
// recover its signature.
type Variant = variant.Variant

// Type is a parsed GVariant type-tree node.
type Type = typesig.Type

// ParseSignature parses a GVariant signature string (e.g. "a{sv}") into a
// Type tree.
func ParseSignature(sig string) (*Type, error) { return typesig.Parse(sig) }

// Kind is shorthand for the Type's discriminant, re-exported so callers
// need not import typesig directly just to switch on it.
type Kind = typesig.Kind

// Source is a positioned, length-known byte source for decoding.
type Source = ioadapter.Source

// Sink is an append-only byte destination for encoding.
type Sink = ioadapter.Sink

// Err is the concrete error type every govariant operation returns on
// failure; use gerrors.IsKind(err, gerrors.SomeKind) to classify it.
type Err = gerrors.Error

// Encode serialises v into a freshly allocated byte slice under cfg.
func Encode(cfg Config, v *Variant) ([]byte, error) {
	return codec.Encode(cfg, v)
}

// EncodeInto serialises v and writes the result to sink.
func EncodeInto(cfg Config, v *Variant, sink Sink) error {
	return codec.EncodeInto(cfg, v, sink)
}

// DecodeFromSlice decodes a value of type ty from the entirety of data.
func DecodeFromSlice(cfg Config, ty *Type, data []byte) (*Variant, error) {
	return codec.DecodeFromSlice(cfg, ty, data)
}

// DecodeFromReader decodes a value of type ty from a seekable reader of
// known total length, per spec.md §6's decode_from_reader. r must support
// io.ReaderAt semantics (e.g. *os.File); length is the total byte count
// available starting at offset 0.
func DecodeFromReader(cfg Config, ty *Type, r io.ReaderAt, length int64) (*Variant, error) {
	return codec.DecodeFromSource(cfg, ty, ioadapter.NewReaderSource(r, length))
}

// Size reports the encoded length of v under cfg.
func Size(cfg Config, v *Variant) (int64, error) {
	return codec.Size(cfg, v)
}

// Leaf and container constructors, re-exported so straightforward callers
// need not also import the variant package directly (spec.md §6: "Type
// Variant with constructors for each leaf and container").
var (
	Bool       = variant.Bool
	Byte       = variant.Byte
	Int16      = variant.Int16
	Uint16     = variant.Uint16
	Int32      = variant.Int32
	Uint32     = variant.Uint32
	Int64      = variant.Int64
	Uint64     = variant.Uint64
	Float64    = variant.Float64
	String     = variant.String
	ObjectPath = variant.ObjectPath
	Signature  = variant.Signature
	None       = variant.None
	Some       = variant.Some
	Array      = variant.Array
	Struct     = variant.Struct
	DictEntry  = variant.DictEntryVal
	VariantVal = variant.VariantVal
)
