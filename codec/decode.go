package codec

import (
	"fmt"
	"math"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	"github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload"
	"github.com/wippyai/thriftcore/ttype"
)

func decodeStruct(item any, s payload.Struct, path []string) error {
	p := s.Base()
	typ := p.Type()
	path = appendPath(path, typ.Name())

	m, ok := item.(map[any]any)
	if !ok {
		return errors.InvalidData(errors.PhaseDecode, path, fmt.Sprintf("struct must be a map, got %T", item))
	}

	ids := make([]int16, 0, len(m))
	raws := make(map[int16]any, len(m))
	for k, raw := range m {
		n, ok := k.(int64)
		if !ok || n < math.MinInt16 || n > math.MaxInt16 {
			return errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).
				Value(k).
				Detail("field key %v is not a field id", k).
				Build()
		}
		id := int16(n)
		ids = append(ids, id)
		raws[id] = raw
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		raw := raws[id]
		f, ok := typ.Field(id)
		if !ok {
			Logger().Debug("skip unknown field",
				zap.String("struct", typ.Name()),
				zap.Int16("id", id),
			)
			continue
		}
		v, ok, err := decodeValue(f.Type, raw, appendPath(path, f.Name))
		if err != nil {
			return err
		}
		if !ok {
			return payload.NewDecodeError(typ.Name(), id, f.Name, raw, f.Type)
		}
		if err := p.SetByID(id, v); err != nil {
			return err
		}
	}
	return nil
}

// decodeValue converts raw to the Go type of desc. ok is false when raw does
// not match desc; err is set for failures that are not plain mismatches,
// such as a DecodeError from a nested struct.
func decodeValue(desc ttype.Descriptor, raw any, path []string) (any, bool, error) {
	switch desc.Tag {
	case ttype.BOOL:
		b, ok := raw.(bool)
		return b, ok, nil
	case ttype.BYTE, ttype.I16, ttype.I32, ttype.I64:
		n, ok := raw.(int64)
		if !ok || !fitsTag(desc.Tag, n) {
			return nil, false, nil
		}
		switch desc.Tag {
		case ttype.BYTE:
			return int8(n), true, nil
		case ttype.I16:
			return int16(n), true, nil
		case ttype.I32:
			return int32(n), true, nil
		default:
			return n, true, nil
		}
	case ttype.DOUBLE:
		f, ok := raw.(float64)
		return f, ok, nil
	case ttype.STRING, ttype.UTF8, ttype.UTF16:
		switch s := raw.(type) {
		case string:
			return s, true, nil
		case []byte:
			return s, true, nil
		case cbor.ByteString:
			// byte string map keys
			return string(s), true, nil
		}
		return nil, false, nil
	case ttype.STRUCT:
		return decodeNested(desc, raw, path)
	case ttype.LIST, ttype.SET:
		items, ok := raw.([]any)
		if !ok || desc.Elem == nil {
			return nil, false, nil
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, ok, err := decodeValue(*desc.Elem, item, path)
			if err != nil || !ok {
				return nil, ok, err
			}
			out[i] = v
		}
		return out, true, nil
	case ttype.MAP:
		m, ok := raw.(map[any]any)
		if !ok || desc.Key == nil || desc.Value == nil {
			return nil, false, nil
		}
		out := make(map[any]any, len(m))
		for rk, rv := range m {
			k, ok, err := decodeValue(*desc.Key, rk, path)
			if err != nil || !ok {
				return nil, ok, err
			}
			if b, isBytes := k.([]byte); isBytes {
				k = string(b)
			}
			v, ok, err := decodeValue(*desc.Value, rv, path)
			if err != nil || !ok {
				return nil, ok, err
			}
			out[k] = v
		}
		return out, true, nil
	default:
		return nil, false, nil
	}
}

func decodeNested(desc ttype.Descriptor, raw any, path []string) (any, bool, error) {
	st, ok := desc.Struct.(*payload.StructType)
	if !ok {
		return nil, false, errors.Unsupported(errors.PhaseDecode, path, desc.String(),
			fmt.Sprintf("struct reference %T cannot be instantiated", desc.Struct))
	}
	if _, isMap := raw.(map[any]any); !isMap {
		return nil, false, nil
	}
	inst := st.Instantiate()
	if err := decodeStruct(raw, inst, path); err != nil {
		return nil, false, err
	}
	return inst, true, nil
}
