package ttype

import "strings"

// Named is a reference to a struct type. Only its name is needed here.
type Named interface {
	Name() string
}

// Descriptor fully describes a (possibly generic) Thrift type.
//
// Which nested part is meaningful depends on Tag: Elem for LIST and SET,
// Key and Value for MAP, Struct for STRUCT. A descriptor whose nested part
// is absent renders as its bare tag name.
type Descriptor struct {
	Struct Named
	Elem   *Descriptor
	Key    *Descriptor
	Value  *Descriptor
	Tag    Tag
}

// Scalar describes a type with no nested parts, such as I32 or STRING.
func Scalar(tag Tag) Descriptor {
	return Descriptor{Tag: tag}
}

// List describes a LIST of elem.
func List(elem Descriptor) Descriptor {
	return Descriptor{Tag: LIST, Elem: &elem}
}

// Set describes a SET of elem.
func Set(elem Descriptor) Descriptor {
	return Descriptor{Tag: SET, Elem: &elem}
}

// Map describes a MAP from key to value.
func Map(key, value Descriptor) Descriptor {
	return Descriptor{Tag: MAP, Key: &key, Value: &value}
}

// Struct describes a STRUCT field holding instances of ref.
func Struct(ref Named) Descriptor {
	return Descriptor{Tag: STRUCT, Struct: ref}
}

// String renders the descriptor, e.g. "LIST<I32>" or "MAP<STRING, Point>".
func (d Descriptor) String() string {
	var b strings.Builder
	d.format(&b)
	return b.String()
}

func (d *Descriptor) format(b *strings.Builder) {
	switch d.Tag {
	case STRUCT:
		if d.Struct == nil {
			b.WriteString(STRUCT.String())
			return
		}
		b.WriteString(d.Struct.Name())
	case LIST, SET:
		b.WriteString(d.Tag.String())
		if d.Elem == nil {
			return
		}
		b.WriteByte('<')
		d.Elem.format(b)
		b.WriteByte('>')
	case MAP:
		b.WriteString(MAP.String())
		if d.Key == nil && d.Value == nil {
			return
		}
		b.WriteByte('<')
		formatPart(b, d.Key)
		b.WriteString(", ")
		formatPart(b, d.Value)
		b.WriteByte('>')
	default:
		b.WriteString(d.Tag.String())
	}
}

func formatPart(b *strings.Builder, d *Descriptor) {
	if d == nil {
		b.WriteByte('?')
		return
	}
	d.format(b)
}
