package payload

import "github.com/wippyai/thriftcore/errors"

// ArgsToKwargs names positional values after the fields of spec, in
// ascending field id order.
func ArgsToKwargs(spec FieldSpec, args ...any) ([]Arg, error) {
	return positional("", spec.Sorted(), args)
}

// NewPositional builds an instance from positional values ordered by field
// id, the way RPC argument structs are filled from call arguments.
func (t *StructType) NewPositional(values ...any) (*Payload, error) {
	args, err := positional(t.name, t.sorted, values)
	if err != nil {
		return nil, err
	}
	return t.New(args...)
}

func positional(typeName string, fields []Field, values []any) ([]Arg, error) {
	if len(values) > len(fields) {
		return nil, errors.TooManyArgs(errors.PhaseConstruct, typeName, len(values), len(fields))
	}
	out := make([]Arg, len(values))
	for i, v := range values {
		out[i] = Arg{Name: fields[i].Name, Value: v}
	}
	return out, nil
}
