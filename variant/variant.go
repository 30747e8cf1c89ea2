// Package variant implements GVariant's tagged-tree value representation:
// the in-memory form every govariant encode/decode call produces or
// consumes, mirroring the Variant enum in original_source/src/variant.rs
// but extended per SPEC_FULL.md to cover maybe/struct/dict-entry/variant
// containers that the original left as TODOs.
package variant

import (
	"cmp"
	"fmt"

	"govariant/typesig"
)

// Variant is a single GVariant value together with enough structure to
// recover its signature. It is the tagged-tree alternative the codec
// engine is built against (see DESIGN.md's Design Note on tagged-tree
// vs visitor cores).
type Variant struct {
	kind     typesig.Kind
	b        bool
	u8       uint8
	i16      int16
	u16      uint16
	i32      int32
	u32      uint32
	i64      int64
	u64      uint64
	f64      float64
	str      string // String, ObjectPath, Signature
	elem     *Variant
	hasElem  bool // for Maybe: distinguishes Some(nil-looking) impossibility; Maybe always carries elemType
	elemType *typesig.Type
	items    []*Variant // Array elements, Struct fields, DictEntry(key,value)
}

// discriminant gives each Kind a stable ordinal for tie-breaking Ord
// across heterogeneous comparisons (mirrors Variant::discriminant in the
// original).
func (v *Variant) discriminant() int {
	return int(v.kind)
}

// Kind returns the GVariant type-universe kind of this value.
func (v *Variant) Kind() typesig.Kind { return v.kind }

// --- Constructors ----------------------------------------------------------

func Bool(b bool) *Variant    { return &Variant{kind: typesig.KindBool, b: b} }
func Byte(b uint8) *Variant   { return &Variant{kind: typesig.KindByte, u8: b} }
func Int16(v int16) *Variant  { return &Variant{kind: typesig.KindInt16, i16: v} }
func Uint16(v uint16) *Variant { return &Variant{kind: typesig.KindUint16, u16: v} }
func Int32(v int32) *Variant  { return &Variant{kind: typesig.KindInt32, i32: v} }
func Uint32(v uint32) *Variant { return &Variant{kind: typesig.KindUint32, u32: v} }
func Int64(v int64) *Variant  { return &Variant{kind: typesig.KindInt64, i64: v} }
func Uint64(v uint64) *Variant { return &Variant{kind: typesig.KindUint64, u64: v} }
func Float64(v float64) *Variant { return &Variant{kind: typesig.KindFloat64, f64: v} }
func String(s string) *Variant { return &Variant{kind: typesig.KindString, str: s} }

// ObjectPath builds a distinct leaf type from String (signature "o"),
// though its wire encoding is byte-for-byte identical to a NUL-terminated
// string. Kept distinct per SPEC_FULL.md's "supplemented features" #1.
func ObjectPath(s string) *Variant { return &Variant{kind: typesig.KindObjectPath, str: s} }

// Signature builds a distinct leaf type from String (signature "g").
func Signature(s string) *Variant { return &Variant{kind: typesig.KindSignature, str: s} }

// None builds an empty Maybe of the given inner type.
func None(inner *typesig.Type) *Variant {
	return &Variant{kind: typesig.KindMaybe, elemType: inner}
}

// Some builds a present Maybe wrapping v.
func Some(v *Variant) *Variant {
	return &Variant{kind: typesig.KindMaybe, elem: v, hasElem: true, elemType: v.Type()}
}

// Array builds an array of the given element type. elemType is required
// even for an empty array so the signature can be recovered.
func Array(elemType *typesig.Type, elems ...*Variant) *Variant {
	return &Variant{kind: typesig.KindArray, elemType: elemType, items: elems}
}

// Struct builds a tuple value from its fields in order.
func Struct(fields ...*Variant) *Variant {
	return &Variant{kind: typesig.KindStruct, items: fields}
}

// DictEntryVal builds a single dict-entry (key, value) pair.
func DictEntryVal(key, value *Variant) *Variant {
	return &Variant{kind: typesig.KindDictEntry, items: []*Variant{key, value}}
}

// VariantVal wraps an inner value as a self-describing "v" variant.
func VariantVal(inner *Variant) *Variant {
	return &Variant{kind: typesig.KindVariant, elem: inner, hasElem: true}
}

// --- Accessors ---------------------------------------------------------

func (v *Variant) BoolValue() bool        { return v.b }
func (v *Variant) ByteValue() uint8       { return v.u8 }
func (v *Variant) Int16Value() int16      { return v.i16 }
func (v *Variant) Uint16Value() uint16    { return v.u16 }
func (v *Variant) Int32Value() int32      { return v.i32 }
func (v *Variant) Uint32Value() uint32    { return v.u32 }
func (v *Variant) Int64Value() int64      { return v.i64 }
func (v *Variant) Uint64Value() uint64    { return v.u64 }
func (v *Variant) Float64Value() float64  { return v.f64 }
func (v *Variant) StringValue() string    { return v.str }

// IsPresent reports whether a Maybe value holds Some(...).
func (v *Variant) IsPresent() bool { return v.hasElem }

// Elem returns the wrapped value for Maybe (Some) or VariantVal, or nil.
func (v *Variant) Elem() *Variant { return v.elem }

// ElemType returns the declared element/inner type for Maybe and Array.
func (v *Variant) ElemType() *typesig.Type { return v.elemType }

// Items returns the child values for Array, Struct, and DictEntry.
func (v *Variant) Items() []*Variant { return v.items }

// Type reconstructs the full type tree for this value.
func (v *Variant) Type() *typesig.Type {
	switch v.kind {
	case typesig.KindMaybe:
		if v.hasElem {
			return typesig.Maybe(v.elem.Type())
		}
		return typesig.Maybe(v.elemType)
	case typesig.KindArray:
		return typesig.Array(v.elemType)
	case typesig.KindStruct:
		children := make([]*typesig.Type, len(v.items))
		for i, it := range v.items {
			children[i] = it.Type()
		}
		return typesig.Struct(children...)
	case typesig.KindDictEntry:
		return typesig.DictEntry(v.items[0].Type(), v.items[1].Type())
	case typesig.KindVariant:
		return typesig.VariantT()
	default:
		return &typesig.Type{Kind: v.kind}
	}
}

// SignatureString returns the GVariant signature string for this value.
func (v *Variant) SignatureString() string {
	return v.Type().Signature()
}

// Equal reports deep structural equality, matching PartialEq in the
// original's variant.rs extended to the container kinds it left as TODOs.
func (v *Variant) Equal(rhs *Variant) bool {
	return v.Compare(rhs) == 0
}

// Compare implements a total order across Variant values: same-kind values
// compare by value (floats via a NaN-safe total order so Variant can be
// used as a map/set key, mirroring ordered_float.OrderedFloat in the
// original); different-kind values compare by their discriminant.
func (v *Variant) Compare(rhs *Variant) int {
	if v.kind != rhs.kind {
		return cmp.Compare(v.discriminant(), rhs.discriminant())
	}
	switch v.kind {
	case typesig.KindBool:
		return cmp.Compare(boolToInt(v.b), boolToInt(rhs.b))
	case typesig.KindByte:
		return cmp.Compare(v.u8, rhs.u8)
	case typesig.KindInt16:
		return cmp.Compare(v.i16, rhs.i16)
	case typesig.KindUint16:
		return cmp.Compare(v.u16, rhs.u16)
	case typesig.KindInt32:
		return cmp.Compare(v.i32, rhs.i32)
	case typesig.KindUint32:
		return cmp.Compare(v.u32, rhs.u32)
	case typesig.KindInt64:
		return cmp.Compare(v.i64, rhs.i64)
	case typesig.KindUint64:
		return cmp.Compare(v.u64, rhs.u64)
	case typesig.KindFloat64:
		return totalOrderFloat(v.f64, rhs.f64)
	case typesig.KindString, typesig.KindObjectPath, typesig.KindSignature:
		return cmp.Compare(v.str, rhs.str)
	case typesig.KindMaybe:
		if v.hasElem != rhs.hasElem {
			return cmp.Compare(boolToInt(v.hasElem), boolToInt(rhs.hasElem))
		}
		if !v.hasElem {
			return 0
		}
		return v.elem.Compare(rhs.elem)
	case typesig.KindVariant:
		return v.elem.Compare(rhs.elem)
	case typesig.KindArray, typesig.KindStruct, typesig.KindDictEntry:
		n := len(v.items)
		if len(rhs.items) < n {
			n = len(rhs.items)
		}
		for i := 0; i < n; i++ {
			if c := v.items[i].Compare(rhs.items[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(v.items), len(rhs.items))
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// totalOrderFloat imposes a NaN-safe total order on float64, the Go
// equivalent of ordered_float::OrderedFloat in the Rust original: NaN
// sorts after all other values (including +Inf) and compares equal to
// itself.
func totalOrderFloat(a, b float64) int {
	an, bn := a != a, b != b // NaN check without importing math for a one-liner.
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}

func (v *Variant) String() string {
	return fmt.Sprintf("Variant(%s)", v.SignatureString())
}
