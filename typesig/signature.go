// Package typesig parses a GVariant signature string into a type tree and
// derives the two properties every layout decision in the codec depends
// on: alignment and fixed-size-ness.
//
// Grounded on the enum-driven signature dispatch in original_source's
// src/de/variant.rs (which walks a signature character-by-character to
// decide which deserializer to recurse into) and on the type table in
// spec.md §3.
package typesig

import (
	"strings"

	"govariant/gerrors"
)

// Kind enumerates the GVariant type universe this package understands.
type Kind int

const (
	KindBool Kind = iota
	KindByte
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat64
	KindString
	KindObjectPath
	KindSignature
	KindMaybe
	KindArray
	KindStruct
	KindDictEntry
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindByte:
		return "byte"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindObjectPath:
		return "object-path"
	case KindSignature:
		return "signature"
	case KindMaybe:
		return "maybe"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindDictEntry:
		return "dict-entry"
	case KindVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// MaxNestingDepth bounds signature-parsing recursion, per spec.md §4.8.
const MaxNestingDepth = 64

// Type is a node in a parsed GVariant type tree. Children holds one entry
// for Maybe/Array, two for DictEntry (key, value), and N for Struct.
type Type struct {
	Kind     Kind
	Children []*Type
}

// Alignment returns the power-of-two (<=8) byte alignment this type
// requires, per spec.md §3's table: scalar types fix their own alignment;
// containers take the max alignment of their children (minimum 1).
func (t *Type) Alignment() int {
	switch t.Kind {
	case KindBool, KindByte, KindString, KindObjectPath, KindSignature:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32:
		return 4
	case KindInt64, KindUint64, KindFloat64, KindVariant:
		return 8
	case KindMaybe, KindArray:
		return t.Children[0].Alignment()
	case KindStruct, KindDictEntry:
		max := 1
		for _, c := range t.Children {
			if a := c.Alignment(); a > max {
				max = a
			}
		}
		return max
	default:
		return 1
	}
}

// FixedSize reports whether this type's encoded length is a compile-time
// function of the schema alone (recursively true for all descendants).
func (t *Type) FixedSize() bool {
	switch t.Kind {
	case KindBool, KindByte, KindInt16, KindUint16, KindInt32, KindUint32,
		KindInt64, KindUint64, KindFloat64:
		return true
	case KindString, KindObjectPath, KindSignature, KindMaybe, KindArray, KindVariant:
		return false
	case KindStruct, KindDictEntry:
		if len(t.Children) == 0 {
			return true
		}
		for _, c := range t.Children {
			if !c.FixedSize() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FixedWidth returns the constant encoded size for a fixed-size type. It
// panics if called on a variable-size type; callers must check FixedSize
// first.
func (t *Type) FixedWidth() int64 {
	switch t.Kind {
	case KindBool, KindByte:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	case KindStruct, KindDictEntry:
		if len(t.Children) == 0 {
			return 1 // GVariant's unit type "()" encodes as a single 0x00 byte.
		}
		var cursor int64
		align := t.Alignment()
		for _, c := range t.Children {
			a := int64(c.Alignment())
			if a > 1 {
				cursor += (a - cursor%a) % a
			}
			cursor += c.FixedWidth()
		}
		if align > 1 {
			cursor += (int64(align) - cursor%int64(align)) % int64(align)
		}
		return cursor
	default:
		panic("typesig: FixedWidth called on variable-size type " + t.Kind.String())
	}
}

// Signature renders the type tree back into its canonical signature string.
func (t *Type) Signature() string {
	var b strings.Builder
	t.writeSig(&b)
	return b.String()
}

func (t *Type) writeSig(b *strings.Builder) {
	switch t.Kind {
	case KindBool:
		b.WriteByte('b')
	case KindByte:
		b.WriteByte('y')
	case KindInt16:
		b.WriteByte('n')
	case KindUint16:
		b.WriteByte('q')
	case KindInt32:
		b.WriteByte('i')
	case KindUint32:
		b.WriteByte('u')
	case KindInt64:
		b.WriteByte('x')
	case KindUint64:
		b.WriteByte('t')
	case KindFloat64:
		b.WriteByte('d')
	case KindString:
		b.WriteByte('s')
	case KindObjectPath:
		b.WriteByte('o')
	case KindSignature:
		b.WriteByte('g')
	case KindVariant:
		b.WriteByte('v')
	case KindMaybe:
		b.WriteByte('m')
		t.Children[0].writeSig(b)
	case KindArray:
		b.WriteByte('a')
		t.Children[0].writeSig(b)
	case KindStruct:
		b.WriteByte('(')
		for _, c := range t.Children {
			c.writeSig(b)
		}
		b.WriteByte(')')
	case KindDictEntry:
		b.WriteByte('{')
		t.Children[0].writeSig(b)
		t.Children[1].writeSig(b)
		b.WriteByte('}')
	}
}

// Leaf constructors, for building type trees programmatically.
func Bool() *Type       { return &Type{Kind: KindBool} }
func Byte() *Type       { return &Type{Kind: KindByte} }
func Int16() *Type      { return &Type{Kind: KindInt16} }
func Uint16() *Type     { return &Type{Kind: KindUint16} }
func Int32() *Type      { return &Type{Kind: KindInt32} }
func Uint32() *Type     { return &Type{Kind: KindUint32} }
func Int64() *Type      { return &Type{Kind: KindInt64} }
func Uint64() *Type     { return &Type{Kind: KindUint64} }
func Float64() *Type    { return &Type{Kind: KindFloat64} }
func String() *Type     { return &Type{Kind: KindString} }
func ObjectPath() *Type { return &Type{Kind: KindObjectPath} }
func Signature() *Type  { return &Type{Kind: KindSignature} }
func VariantT() *Type   { return &Type{Kind: KindVariant} }

func Maybe(inner *Type) *Type { return &Type{Kind: KindMaybe, Children: []*Type{inner}} }
func Array(elem *Type) *Type  { return &Type{Kind: KindArray, Children: []*Type{elem}} }
func Struct(fields ...*Type) *Type {
	return &Type{Kind: KindStruct, Children: fields}
}
func DictEntry(key, value *Type) *Type {
	return &Type{Kind: KindDictEntry, Children: []*Type{key, value}}
}

// Parse parses a GVariant signature string into a type tree. The entire
// string must describe exactly one complete type; trailing garbage is an
// error. Nesting beyond MaxNestingDepth is rejected.
func Parse(sig string) (*Type, error) {
	p := &parser{s: sig}
	t, err := p.parseOne(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.s) {
		return nil, gerrors.New(gerrors.BadSignature, "trailing characters after signature %q at position %d", sig, p.pos)
	}
	return t, nil
}

// ParsePrefix parses a single complete type from the start of sig and
// returns it along with the number of bytes consumed, allowing callers
// (e.g. struct field lists) to parse a sequence of types back to back.
func ParsePrefix(sig string) (*Type, int, error) {
	p := &parser{s: sig}
	t, err := p.parseOne(0)
	if err != nil {
		return nil, 0, err
	}
	return t, p.pos, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) parseOne(depth int) (*Type, error) {
	if depth > MaxNestingDepth {
		return nil, gerrors.New(gerrors.BadSignature, "signature nesting exceeds cap of %d", MaxNestingDepth)
	}
	if p.pos >= len(p.s) {
		return nil, gerrors.New(gerrors.BadSignature, "unexpected end of signature %q", p.s)
	}
	c := p.s[p.pos]
	p.pos++
	switch c {
	case 'b':
		return Bool(), nil
	case 'y':
		return Byte(), nil
	case 'n':
		return Int16(), nil
	case 'q':
		return Uint16(), nil
	case 'i':
		return Int32(), nil
	case 'u':
		return Uint32(), nil
	case 'x':
		return Int64(), nil
	case 't':
		return Uint64(), nil
	case 'd':
		return Float64(), nil
	case 's':
		return String(), nil
	case 'o':
		return ObjectPath(), nil
	case 'g':
		return Signature(), nil
	case 'v':
		return VariantT(), nil
	case 'm':
		inner, err := p.parseOne(depth + 1)
		if err != nil {
			return nil, err
		}
		return Maybe(inner), nil
	case 'a':
		elem, err := p.parseOne(depth + 1)
		if err != nil {
			return nil, err
		}
		return Array(elem), nil
	case '(':
		var fields []*Type
		for {
			if p.pos >= len(p.s) {
				return nil, gerrors.New(gerrors.BadSignature, "unterminated structure in signature %q", p.s)
			}
			if p.s[p.pos] == ')' {
				p.pos++
				return Struct(fields...), nil
			}
			f, err := p.parseOne(depth + 1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	case '{':
		key, err := p.parseOne(depth + 1)
		if err != nil {
			return nil, err
		}
		value, err := p.parseOne(depth + 1)
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.s) || p.s[p.pos] != '}' {
			return nil, gerrors.New(gerrors.BadSignature, "unterminated dict-entry in signature %q", p.s)
		}
		p.pos++
		return DictEntry(key, value), nil
	default:
		return nil, gerrors.New(gerrors.BadSignature, "unsupported signature character %q in %q", c, p.s)
	}
}
