package payload

import (
	"strconv"
	"strings"

	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/ttype"
)

// DecodeErrorType is the struct type of every DecodeError.
var DecodeErrorType = Define("TDecodeException",
	ConstructorSpec{
		{Name: "struct_name", Value: ""},
		{Name: "fid", Value: int16(0)},
		{Name: "field", Value: ""},
		{Name: "value", Value: nil},
		{Name: "type_spec", Value: ttype.Descriptor{}},
	},
	nil,
	AsException(),
)

// DecodeError reports a decoded value that does not match its field's
// declared type. The type is kept as a descriptor and rendered only when the
// message is built.
type DecodeError struct {
	*Exception
}

// NewDecodeError records a failed field of structName.
func NewDecodeError(structName string, fid int16, field string, value any, typ ttype.Descriptor) *DecodeError {
	e := DecodeErrorType.MustNewException(
		With("struct_name", structName),
		With("fid", fid),
		With("field", field),
		With("value", value),
		With("type_spec", typ),
	)
	return &DecodeError{Exception: e}
}

func (e *DecodeError) StructName() string {
	v, _ := e.Get("struct_name")
	s, _ := v.(string)
	return s
}

func (e *DecodeError) FieldID() int16 {
	v, _ := e.Get("fid")
	id, _ := v.(int16)
	return id
}

func (e *DecodeError) FieldName() string {
	v, _ := e.Get("field")
	s, _ := v.(string)
	return s
}

// Value returns the offending decoded value.
func (e *DecodeError) Value() any {
	v, _ := e.Get("value")
	return v
}

func (e *DecodeError) FieldType() ttype.Descriptor {
	v, _ := e.Get("type_spec")
	d, _ := v.(ttype.Descriptor)
	return d
}

// TypeRepr renders the declared type, e.g. "LIST<I32>".
func (e *DecodeError) TypeRepr() string {
	return e.FieldType().String()
}

// Error renders
//
//	Field 'x(1)' of 'Point' needs type 'I32', but the value is `'abc'`
func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("Field '")
	b.WriteString(e.FieldName())
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(int(e.FieldID())))
	b.WriteString(")' of '")
	b.WriteString(e.StructName())
	b.WriteString("' needs type '")
	b.WriteString(e.TypeRepr())
	b.WriteString("', but the value is `")
	writeRepr(&b, e.Value())
	b.WriteByte('`')
	return b.String()
}

// Is lets errors.Is match a decode type mismatch from the errors package.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*errors.Error)
	return ok && t.Phase == errors.PhaseDecode && t.Kind == errors.KindTypeMismatch
}
