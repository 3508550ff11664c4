package ttype

// Nested is a tag paired with its own nested spec, the building block of
// the loose (tag, spec) form accepted by Format.
type Nested struct {
	Spec any
	Tag  Tag
}

// Format renders a tag and its optional nested spec for diagnostics.
//
// spec may be nil (scalar), a Named (STRUCT), a single element spec (LIST,
// SET) or a [2]any key/value pair (MAP). Element, key and value specs are
// each a Tag, a Nested, a Descriptor or a *Descriptor.
func Format(tag Tag, spec any) string {
	return Parse(tag, spec).String()
}

// Parse converts the loose (tag, spec) form into a Descriptor.
// Shapes that do not match the tag are dropped, not reported.
func Parse(tag Tag, spec any) Descriptor {
	if spec == nil {
		return Scalar(tag)
	}
	switch tag {
	case STRUCT:
		if n, ok := spec.(Named); ok {
			return Struct(n)
		}
		return Scalar(STRUCT)
	case LIST, SET:
		elem, ok := parseElem(spec)
		if !ok {
			return Scalar(tag)
		}
		return Descriptor{Tag: tag, Elem: &elem}
	case MAP:
		pair, ok := spec.([2]any)
		if !ok {
			return Scalar(MAP)
		}
		d := Descriptor{Tag: MAP}
		if k, ok := parseElem(pair[0]); ok {
			d.Key = &k
		}
		if v, ok := parseElem(pair[1]); ok {
			d.Value = &v
		}
		return d
	default:
		return Scalar(tag)
	}
}

func parseElem(s any) (Descriptor, bool) {
	switch v := s.(type) {
	case Tag:
		return Scalar(v), true
	case Nested:
		return Parse(v.Tag, v.Spec), true
	case Descriptor:
		return v, true
	case *Descriptor:
		if v == nil {
			return Descriptor{}, false
		}
		return *v, true
	case Named:
		return Struct(v), true
	default:
		return Descriptor{}, false
	}
}
