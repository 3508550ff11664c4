package payload

import (
	"reflect"
	"strings"

	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload/internal/layout"
)

// Reader decodes into a struct instance in place, following the instance
// type's field spec. A decoded value of the wrong type is reported as a
// *DecodeError.
type Reader interface {
	ReadStruct(s Struct) error
}

// Writer encodes every set field of a struct instance per its field spec.
type Writer interface {
	WriteStruct(s Struct) error
}

// Struct is implemented by *Payload and *Exception.
type Struct interface {
	Base() *Payload
	Type() *StructType
	Equal(other Struct) bool
	Read(r Reader) error
	Write(w Writer) error
	String() string
}

// FieldValue is a set field and its value.
type FieldValue struct {
	Value any
	Name  string
}

// Payload is an instance of a struct type. Values live in a fixed array
// addressed by the slot layout the type had when the instance was built; a
// slot is set once the constructor, a reader or Set assigns it.
type Payload struct {
	typ     *StructType
	table   *layout.Table
	values  []any
	present []bool
}

func (p *Payload) Base() *Payload {
	return p
}

func (p *Payload) Type() *StructType {
	return p.typ
}

// Read decodes into p using r.
func (p *Payload) Read(r Reader) error {
	return r.ReadStruct(p)
}

// Write encodes p using w.
func (p *Payload) Write(w Writer) error {
	return w.WriteStruct(p)
}

func (p *Payload) Get(name string) (any, bool) {
	idx, ok := p.table.Index(name)
	if !ok || !p.present[idx] {
		return nil, false
	}
	return p.values[idx], true
}

// Set assigns a field by name. Names outside the type's layout are rejected.
func (p *Payload) Set(name string, value any) error {
	idx, ok := p.table.Index(name)
	if !ok {
		return errors.FieldUnknown(errors.PhaseConstruct, []string{p.typ.name}, name)
	}
	p.values[idx] = value
	p.present[idx] = true
	return nil
}

// Unset clears a field so that it no longer takes part in equality,
// rendering or encoding.
func (p *Payload) Unset(name string) {
	if idx, ok := p.table.Index(name); ok {
		p.values[idx] = nil
		p.present[idx] = false
	}
}

func (p *Payload) GetByID(id int16) (any, bool) {
	idx, ok := p.table.IndexByID(id)
	if !ok || !p.present[idx] {
		return nil, false
	}
	return p.values[idx], true
}

func (p *Payload) SetByID(id int16, value any) error {
	idx, ok := p.table.IndexByID(id)
	if !ok {
		return errors.New(errors.PhaseConstruct, errors.KindFieldUnknown).
			Path(p.typ.name).
			Value(id).
			Detail("no field with id %d", id).
			Build()
	}
	p.values[idx] = value
	p.present[idx] = true
	return nil
}

// Fields returns the set fields in slot order.
func (p *Payload) Fields() []FieldValue {
	out := make([]FieldValue, 0, len(p.values))
	for i, s := range p.table.Slots {
		if p.present[i] {
			out = append(out, FieldValue{Name: s.Name, Value: p.values[i]})
		}
	}
	return out
}

// Equal reports whether other is an instance of the same struct type with
// the same set fields holding equal values.
//
// Instances of exception types, however built, equal only themselves.
// Instances built before a GenInit retrofit never equal ones built after it.
func (p *Payload) Equal(other Struct) bool {
	if isNil(other) {
		return false
	}
	o := other.Base()
	if o == nil || o.typ != p.typ || o.table != p.table {
		return false
	}
	if o == p {
		return true
	}
	if p.typ.exception {
		return false
	}
	for i := range p.values {
		if p.present[i] != o.present[i] {
			return false
		}
		if p.present[i] && !valueEqual(p.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// valueEqual is reflect.DeepEqual except that structs compare with their own
// Equal, and lists and maps compare element by element regardless of their
// Go element types.
func valueEqual(a, b any) bool {
	if sa, ok := a.(Struct); ok {
		sb, ok := b.(Struct)
		return ok && sa.Equal(sb)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return reflect.DeepEqual(a, b)
	}
	switch {
	case isList(ra) && isList(rb):
		if isNilList(ra) != isNilList(rb) || ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !valueEqual(ra.Index(i).Interface(), rb.Index(i).Interface()) {
				return false
			}
		}
		return true
	case ra.Kind() == reflect.Map && rb.Kind() == reflect.Map:
		if ra.IsNil() != rb.IsNil() || ra.Len() != rb.Len() {
			return false
		}
		iter := ra.MapRange()
		for iter.Next() {
			vb, ok := mapLookup(rb, iter.Key())
			if !ok || !valueEqual(iter.Value().Interface(), vb.Interface()) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// isList reports slices and arrays other than byte strings, which compare
// as values.
func isList(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

func isNilList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.IsNil()
}

// mapLookup finds key in m, converting between an interface key type and
// the concrete type of the key's dynamic value.
func mapLookup(m, key reflect.Value) (reflect.Value, bool) {
	if key.Kind() == reflect.Interface {
		if key.IsNil() {
			return reflect.Value{}, false
		}
		key = key.Elem()
	}
	if !key.Type().AssignableTo(m.Type().Key()) || !key.Type().Comparable() {
		return reflect.Value{}, false
	}
	v := m.MapIndex(key)
	return v, v.IsValid()
}

// String renders "TypeName(field1=value1, field2=value2)".
func (p *Payload) String() string {
	var b strings.Builder
	b.WriteString(p.typ.name)
	b.WriteByte('(')
	first := true
	for i, s := range p.table.Slots {
		if !p.present[i] {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(s.Name)
		b.WriteByte('=')
		writeRepr(&b, p.values[i])
	}
	b.WriteByte(')')
	return b.String()
}

// isNil reports whether s is nil or a typed nil pointer.
func isNil(s Struct) bool {
	if s == nil {
		return true
	}
	rv := reflect.ValueOf(s)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func unknownArg(typeName, name string) error {
	return errors.FieldUnknown(errors.PhaseConstruct, []string{typeName}, name)
}
