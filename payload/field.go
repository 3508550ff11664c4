package payload

import (
	"sort"

	"github.com/wippyai/thriftcore/ttype"
)

// Field describes one wire field of a struct type.
type Field struct {
	Default any
	Type    ttype.Descriptor
	Name    string
	ID      int16
}

// FieldSpec maps field ids to their descriptions. Ids and names are unique
// within one struct type.
type FieldSpec map[int16]Field

// Sorted returns the fields in ascending id order with ID filled from the key.
func (s FieldSpec) Sorted() []Field {
	out := make([]Field, 0, len(s))
	for id, f := range s {
		f.ID = id
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Default is one constructor parameter: a field name and its default value.
type Default struct {
	Value any
	Name  string
}

// ConstructorSpec is the ordered parameter list of a struct's constructor.
type ConstructorSpec []Default

// Arg is a named constructor argument.
type Arg struct {
	Value any
	Name  string
}

// With returns a named argument overriding the default of field name.
func With(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}
