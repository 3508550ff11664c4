package payload

import (
	"go.uber.org/zap"

	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload/internal/layout"
)

// StructType is a named structure type: its field spec, its constructor and
// the slot layout both imply.
type StructType struct {
	fields    FieldSpec
	ctor      *Constructor
	table     *layout.Table
	sorted    []Field
	name      string
	exception bool
}

// Option configures a struct type at definition.
type Option func(*StructType)

// AsException marks the type's instances as exceptions: raisable errors
// compared by identity.
func AsException() Option {
	return func(t *StructType) {
		t.exception = true
	}
}

// Define creates a struct type. A nil ctor leaves the type without a
// constructor until GenInit supplies one; a nil fields spec likewise.
// It panics with a define-phase *errors.Error when a field name or a
// parameter name repeats.
func Define(name string, ctor ConstructorSpec, fields FieldSpec, opts ...Option) *StructType {
	t := &StructType{name: name}
	for _, opt := range opts {
		opt(t)
	}
	if ctor != nil {
		t.ctor = Synthesize(ctor)
	}
	t.fields = fields
	t.relayout()

	Logger().Debug("define struct type",
		zap.String("name", name),
		zap.Int("params", t.ctor.lenOrZero()),
		zap.Int("fields", len(fields)),
		zap.Bool("exception", t.exception),
	)
	return t
}

// GenInit attaches a field spec and/or installs a constructor on an existing
// type. Nil arguments leave the corresponding part unchanged, so repeating a
// call with the same arguments is a no-op in effect.
//
// GenInit belongs to startup code. Instances built before the call keep
// the layout they were built with and never equal instances built after it.
func GenInit(t *StructType, fields FieldSpec, ctor ConstructorSpec) *StructType {
	if fields != nil {
		t.fields = fields
	}
	if ctor != nil {
		t.ctor = Synthesize(ctor)
	}
	t.relayout()

	Logger().Debug("retrofit struct type",
		zap.String("name", t.name),
		zap.Int("params", t.ctor.lenOrZero()),
		zap.Int("fields", len(t.fields)),
	)
	return t
}

func (t *StructType) relayout() {
	t.sorted = t.fields.Sorted()
	if err := t.checkNames(); err != nil {
		panic(err)
	}

	var params []layout.Param
	if t.ctor != nil {
		params = t.ctor.params
	}
	specs := make([]layout.Spec, len(t.sorted))
	for i, f := range t.sorted {
		specs[i] = layout.Spec{ID: f.ID, Name: f.Name}
	}
	t.table = layout.Build(params, specs)
}

func (t *StructType) checkNames() error {
	seen := make(map[string]int16, len(t.sorted))
	for _, f := range t.sorted {
		if prev, dup := seen[f.Name]; dup {
			return errors.New(errors.PhaseDefine, errors.KindInvalidInput).
				Path(t.name, f.Name).
				Value(f.ID).
				Detail("field ids %d and %d share a name", prev, f.ID).
				Build()
		}
		seen[f.Name] = f.ID
	}
	if t.ctor != nil && len(t.ctor.index) != len(t.ctor.params) {
		return errors.New(errors.PhaseDefine, errors.KindInvalidInput).
			Path(t.name).
			Detail("constructor parameter names repeat").
			Build()
	}
	return nil
}

func (c *Constructor) lenOrZero() int {
	if c == nil {
		return 0
	}
	return c.Len()
}

// Name implements ttype.Named.
func (t *StructType) Name() string {
	return t.name
}

func (t *StructType) IsException() bool {
	return t.exception
}

// Constructor returns the installed constructor, or nil if none was given.
func (t *StructType) Constructor() *Constructor {
	return t.ctor
}

// FieldSpec returns the attached field spec. Callers must not modify it.
func (t *StructType) FieldSpec() FieldSpec {
	return t.fields
}

// Fields returns the field spec in ascending id order.
func (t *StructType) Fields() []Field {
	return t.sorted
}

func (t *StructType) Field(id int16) (Field, bool) {
	f, ok := t.fields[id]
	if ok {
		f.ID = id
	}
	return f, ok
}

func (t *StructType) FieldByName(name string) (Field, bool) {
	idx, ok := t.table.Index(name)
	if !ok || !t.table.Slots[idx].HasID {
		return Field{}, false
	}
	return t.Field(t.table.Slots[idx].ID)
}

// SlotNames returns every field name an instance can hold, in rendering order.
func (t *StructType) SlotNames() []string {
	names := make([]string, t.table.Len())
	for i, s := range t.table.Slots {
		names[i] = s.Name
	}
	return names
}

// New builds an instance, assigning each constructor parameter its argument
// or default. Exception types should be built with NewException; a plain
// instance of one equals only itself.
func (t *StructType) New(args ...Arg) (*Payload, error) {
	p := t.alloc()
	if t.ctor == nil {
		if len(args) > 0 {
			return nil, unknownArg(t.name, args[0].Name)
		}
		return p, nil
	}
	if err := t.ctor.apply(t.name, p.values, p.present, args); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNew is like New but panics on an unknown argument name.
func (t *StructType) MustNew(args ...Arg) *Payload {
	p, err := t.New(args...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewException builds an instance as an exception with a fresh identity.
func (t *StructType) NewException(args ...Arg) (*Exception, error) {
	p, err := t.New(args...)
	if err != nil {
		return nil, err
	}
	return &Exception{Payload: *p, id: nextIdentity()}, nil
}

func (t *StructType) MustNewException(args ...Arg) *Exception {
	e, err := t.NewException(args...)
	if err != nil {
		panic(err)
	}
	return e
}

// Instantiate builds an all-defaults instance of the kind the type declares:
// an *Exception for exception types, a *Payload otherwise. Readers use it to
// materialize nested structs.
func (t *StructType) Instantiate() Struct {
	if t.exception {
		return t.MustNewException()
	}
	return t.MustNew()
}

func (t *StructType) alloc() *Payload {
	n := t.table.Len()
	return &Payload{
		typ:     t,
		table:   t.table,
		values:  make([]any, n),
		present: make([]bool, n),
	}
}
