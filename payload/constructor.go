package payload

import (
	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload/internal/layout"
)

// Constructor assigns a struct's constructor parameters.
//
// Parameters occupy the leading slots of the owning type's layout, in
// parameter order, so the constructor addresses values by position.
type Constructor struct {
	index  map[string]int
	params []layout.Param
}

// Synthesize builds a constructor from an ordered parameter list.
// An empty list yields a constructor that assigns nothing.
func Synthesize(spec ConstructorSpec) *Constructor {
	c := &Constructor{
		params: make([]layout.Param, len(spec)),
		index:  make(map[string]int, len(spec)),
	}
	for i, d := range spec {
		c.params[i] = layout.Param{Name: d.Name, Default: d.Value}
		c.index[d.Name] = i
	}
	return c
}

// Params returns the parameter list the constructor was built from.
func (c *Constructor) Params() ConstructorSpec {
	out := make(ConstructorSpec, len(c.params))
	for i, p := range c.params {
		out[i] = Default{Name: p.Name, Value: p.Default}
	}
	return out
}

func (c *Constructor) Len() int {
	return len(c.params)
}

// Accepts reports whether name is one of the constructor's parameters.
func (c *Constructor) Accepts(name string) bool {
	_, ok := c.index[name]
	return ok
}

// apply writes every parameter into values[0:len(params)], using the
// last matching argument when one is given and the shared default otherwise.
func (c *Constructor) apply(typeName string, values []any, present []bool, args []Arg) error {
	for _, a := range args {
		if _, ok := c.index[a.Name]; !ok {
			return errors.FieldUnknown(errors.PhaseConstruct, []string{typeName}, a.Name)
		}
	}

	for i, p := range c.params {
		v := p.Default
		for _, a := range args {
			if a.Name == p.Name {
				v = a.Value
			}
		}
		values[i] = v
		present[i] = true
	}
	return nil
}
