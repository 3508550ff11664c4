package codec

import (
	"fmt"
	"math"
	"reflect"

	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload"
	"github.com/wippyai/thriftcore/ttype"
)

// encodeStruct maps every set, non-nil field with a field spec entry to its
// id. Fields that exist only as constructor parameters are not encoded.
func encodeStruct(s payload.Struct, path []string) (map[int16]any, error) {
	p := s.Base()
	typ := p.Type()
	path = appendPath(path, typ.Name())

	out := make(map[int16]any, len(typ.Fields()))
	for _, f := range typ.Fields() {
		v, ok := p.GetByID(f.ID)
		if !ok || v == nil {
			continue
		}
		ev, err := encodeValue(f.Type, v, appendPath(path, f.Name))
		if err != nil {
			return nil, err
		}
		out[f.ID] = ev
	}
	return out, nil
}

func encodeValue(desc ttype.Descriptor, v any, path []string) (any, error) {
	switch desc.Tag {
	case ttype.BOOL:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case ttype.BYTE, ttype.I16, ttype.I32, ttype.I64:
		n, ok := toInt64(v)
		if !ok {
			break
		}
		if !fitsTag(desc.Tag, n) {
			return nil, errors.Overflow(errors.PhaseEncode, path, v, desc.Tag.String())
		}
		return n, nil
	case ttype.DOUBLE:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
			return rv.Float(), nil
		}
	case ttype.STRING, ttype.UTF8, ttype.UTF16:
		switch s := v.(type) {
		case string:
			return s, nil
		case []byte:
			return s, nil
		}
	case ttype.STRUCT:
		if s, ok := v.(payload.Struct); ok {
			return encodeStruct(s, path)
		}
	case ttype.LIST, ttype.SET:
		return encodeList(desc, v, path)
	case ttype.MAP:
		return encodeMap(desc, v, path)
	default:
		return nil, errors.Unsupported(errors.PhaseEncode, path, desc.String(), "tag cannot carry a value")
	}
	return nil, errors.TypeMismatch(errors.PhaseEncode, path, fmt.Sprintf("%T", v), desc.String())
}

func encodeList(desc ttype.Descriptor, v any, path []string) (any, error) {
	if desc.Elem == nil {
		return nil, errors.Unsupported(errors.PhaseEncode, path, desc.String(), "container without element type")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.TypeMismatch(errors.PhaseEncode, path, fmt.Sprintf("%T", v), desc.String())
	}
	out := make([]any, rv.Len())
	for i := range out {
		ev, err := encodeValue(*desc.Elem, rv.Index(i).Interface(), appendPath(path, fmt.Sprintf("[%d]", i)))
		if err != nil {
			return nil, err
		}
		out[i] = ev
	}
	return out, nil
}

func encodeMap(desc ttype.Descriptor, v any, path []string) (any, error) {
	if desc.Key == nil || desc.Value == nil {
		return nil, errors.Unsupported(errors.PhaseEncode, path, desc.String(), "map without key or value type")
	}
	if desc.Key.Tag == ttype.STRUCT || desc.Key.Tag.IsContainer() {
		return nil, errors.Unsupported(errors.PhaseEncode, path, desc.String(), "map keys must be scalar")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, errors.TypeMismatch(errors.PhaseEncode, path, fmt.Sprintf("%T", v), desc.String())
	}
	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := encodeValue(*desc.Key, iter.Key().Interface(), path)
		if err != nil {
			return nil, err
		}
		val, err := encodeValue(*desc.Value, iter.Value().Interface(), appendPath(path, fmt.Sprint(iter.Key().Interface())))
		if err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}

func toInt64(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

func fitsTag(tag ttype.Tag, n int64) bool {
	switch tag {
	case ttype.BYTE:
		return n >= math.MinInt8 && n <= math.MaxInt8
	case ttype.I16:
		return n >= math.MinInt16 && n <= math.MaxInt16
	case ttype.I32:
		return n >= math.MinInt32 && n <= math.MaxInt32
	default:
		return true
	}
}

func appendPath(path []string, elem string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}
