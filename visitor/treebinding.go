package visitor

import (
	"govariant/gerrors"
	"govariant/typesig"
	"govariant/variant"
)

// TreeBinding is the reference schema binding spec.md §1 leaves external:
// it drives a Visitor purely off an in-memory variant.Variant tree, so the
// visitor contract can be exercised (and tested) without a real reflective
// mapping from user types. Grounded on the teacher's preference for small
// concrete adapters over reflection-based frameworks (ioadapter's
// SliceSource/BufferSink play the analogous role for C1).
type TreeBinding struct {
	v *variant.Variant
}

// NewTreeBinding wraps v for walking.
func NewTreeBinding(v *variant.Variant) *TreeBinding {
	return &TreeBinding{v: v}
}

// Walk drives visitor with the wrapped value's structure, in the order a
// real schema binding would: scalars as single calls, containers as
// begin/visit*/end triples.
func (t *TreeBinding) Walk(visitor Visitor) error {
	return walk(t.v, visitor)
}

func walk(v *variant.Variant, vis Visitor) error {
	switch v.Kind() {
	case typesig.KindBool:
		return vis.VisitBool(v.BoolValue())
	case typesig.KindByte:
		return vis.VisitU8(v.ByteValue())
	case typesig.KindInt16:
		return vis.VisitI16(v.Int16Value())
	case typesig.KindUint16:
		return vis.VisitU16(v.Uint16Value())
	case typesig.KindInt32:
		return vis.VisitI32(v.Int32Value())
	case typesig.KindUint32:
		return vis.VisitU32(v.Uint32Value())
	case typesig.KindInt64:
		return vis.VisitI64(v.Int64Value())
	case typesig.KindUint64:
		return vis.VisitU64(v.Uint64Value())
	case typesig.KindFloat64:
		return vis.VisitF64(v.Float64Value())
	case typesig.KindString, typesig.KindObjectPath, typesig.KindSignature:
		return vis.VisitString(v.StringValue())
	case typesig.KindMaybe:
		present := v.IsPresent()
		if err := vis.BeginMaybe(present); err != nil {
			return err
		}
		if present {
			if err := walk(v.Elem(), vis); err != nil {
				return err
			}
		}
		return vis.EndMaybe()
	case typesig.KindArray:
		items := v.Items()
		sig := v.ElemType().Signature()
		if byteArrayOf(v.ElemType()) {
			buf := make([]byte, len(items))
			for i, it := range items {
				buf[i] = it.ByteValue()
			}
			// An array of bytes is the wire twin of byte_sequence; a
			// binding that wants the distinction spec.md §4.9 draws can
			// still see it via VisitByteSequence instead of per-element
			// array calls.
			return vis.VisitByteSequence(buf)
		}
		if err := vis.BeginArray(sig, len(items)); err != nil {
			return err
		}
		for i, it := range items {
			if err := vis.VisitElement(i); err != nil {
				return err
			}
			if err := walk(it, vis); err != nil {
				return err
			}
		}
		return vis.EndArray()
	case typesig.KindStruct:
		items := v.Items()
		if err := vis.BeginStruct(len(items)); err != nil {
			return err
		}
		for i, it := range items {
			if err := vis.VisitField(i, it.Type().Signature()); err != nil {
				return err
			}
			if err := walk(it, vis); err != nil {
				return err
			}
		}
		return vis.EndStruct()
	case typesig.KindDictEntry:
		items := v.Items()
		if err := vis.BeginStruct(2); err != nil {
			return err
		}
		for i, it := range items {
			if err := vis.VisitField(i, it.Type().Signature()); err != nil {
				return err
			}
			if err := walk(it, vis); err != nil {
				return err
			}
		}
		return vis.EndStruct()
	case typesig.KindVariant:
		inner := v.Elem()
		if err := vis.BeginVariant(inner.Type().Signature()); err != nil {
			return err
		}
		if err := walk(inner, vis); err != nil {
			return err
		}
		return vis.EndVariant()
	default:
		return gerrors.New(gerrors.UnsupportedShape, "visitor: no walk rule for kind %v", v.Kind())
	}
}

func byteArrayOf(elem *typesig.Type) bool {
	return elem.Kind == typesig.KindByte
}

// Builder is the decode-direction Visitor: it implements Visitor by constructing a
// variant.Variant bottom-up as calls arrive, the decode-direction
// counterpart to TreeBinding's encode-direction Walk. A schema binding that
// wants to decode through the visitor contract (rather than calling
// codec.Decode directly) drives a Builder and reads back Result() when the
// top-level value is complete.
type Builder struct {
	stack       []*frame
	done        *variant.Variant
	nextMaybeTy *typesig.Type
}

type frame struct {
	kind     typesig.Kind
	elemSig  string
	elemType *typesig.Type
	items    []*variant.Variant
	maybeSet bool
}

// NewBuilder returns an empty Builder ready to receive visitor calls.
func NewBuilder() *Builder { return &Builder{} }

// Result returns the value built once the top-level visit sequence has
// completed. It is nil until then.
func (b *Builder) Result() *variant.Variant { return b.done }

func (b *Builder) push(v *variant.Variant) {
	if len(b.stack) == 0 {
		b.done = v
		return
	}
	top := b.stack[len(b.stack)-1]
	top.items = append(top.items, v)
}

func (b *Builder) VisitBool(v bool) error    { b.push(variant.Bool(v)); return nil }
func (b *Builder) VisitU8(v uint8) error     { b.push(variant.Byte(v)); return nil }
func (b *Builder) VisitI16(v int16) error    { b.push(variant.Int16(v)); return nil }
func (b *Builder) VisitU16(v uint16) error   { b.push(variant.Uint16(v)); return nil }
func (b *Builder) VisitI32(v int32) error    { b.push(variant.Int32(v)); return nil }
func (b *Builder) VisitU32(v uint32) error   { b.push(variant.Uint32(v)); return nil }
func (b *Builder) VisitI64(v int64) error    { b.push(variant.Int64(v)); return nil }
func (b *Builder) VisitU64(v uint64) error   { b.push(variant.Uint64(v)); return nil }
func (b *Builder) VisitF64(v float64) error  { b.push(variant.Float64(v)); return nil }
func (b *Builder) VisitString(v string) error {
	b.push(variant.String(v))
	return nil
}

func (b *Builder) VisitByteSequence(v []byte) error {
	elems := make([]*variant.Variant, len(v))
	for i, by := range v {
		elems[i] = variant.Byte(by)
	}
	b.push(variant.Array(typesig.Byte(), elems...))
	return nil
}

// SetNextMaybeType records the inner type of the next BeginMaybe call. The
// bare Visitor contract only carries a present/absent flag (spec.md §4.9's
// begin_maybe() takes no type argument), so an absent Maybe has nothing to
// recover its inner type from once EndMaybe is reached; a caller that
// already knows the schema (a decoder walking a typesig.Type, as opposed to
// a reflective binding) sets the hint immediately before BeginMaybe.
func (b *Builder) SetNextMaybeType(inner *typesig.Type) {
	b.nextMaybeTy = inner
}

func (b *Builder) BeginMaybe(present bool) error {
	b.stack = append(b.stack, &frame{kind: typesig.KindMaybe, maybeSet: present, elemType: b.nextMaybeTy})
	b.nextMaybeTy = nil
	return nil
}

func (b *Builder) EndMaybe() error {
	f := b.pop()
	if f.maybeSet {
		if len(f.items) != 1 {
			return gerrors.New(gerrors.UnsupportedShape, "visitor: maybe present but no element visited")
		}
		b.push(variant.Some(f.items[0]))
		return nil
	}
	if len(f.items) != 0 {
		return gerrors.New(gerrors.UnsupportedShape, "visitor: maybe absent but an element was visited")
	}
	if f.elemType == nil {
		return gerrors.New(gerrors.UnsupportedShape, "visitor: absent maybe requires a type hint via SetNextMaybeType")
	}
	b.push(variant.None(f.elemType))
	return nil
}

func (b *Builder) BeginArray(elementSig string, length int) error {
	elemType, err := typesig.Parse(elementSig)
	if err != nil {
		return gerrors.Wrap(gerrors.BadSignature, err, "visitor: array element signature")
	}
	b.stack = append(b.stack, &frame{kind: typesig.KindArray, elemSig: elementSig, elemType: elemType})
	return nil
}

func (b *Builder) VisitElement(index int) error { return nil }

func (b *Builder) EndArray() error {
	f := b.pop()
	b.push(variant.Array(f.elemType, f.items...))
	return nil
}

func (b *Builder) BeginStruct(fieldCount int) error {
	b.stack = append(b.stack, &frame{kind: typesig.KindStruct})
	return nil
}

func (b *Builder) VisitField(index int, fieldSig string) error { return nil }

func (b *Builder) EndStruct() error {
	f := b.pop()
	b.push(variant.Struct(f.items...))
	return nil
}

func (b *Builder) BeginVariant(signature string) error {
	b.stack = append(b.stack, &frame{kind: typesig.KindVariant})
	return nil
}

func (b *Builder) EndVariant() error {
	f := b.pop()
	if len(f.items) != 1 {
		return gerrors.New(gerrors.UnsupportedShape, "visitor: variant must wrap exactly one value")
	}
	b.push(variant.VariantVal(f.items[0]))
	return nil
}

func (b *Builder) pop() *frame {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f
}
