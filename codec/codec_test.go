package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tcerrors "github.com/wippyai/thriftcore/errors"
	"github.com/wippyai/thriftcore/payload"
	"github.com/wippyai/thriftcore/transport"
	"github.com/wippyai/thriftcore/ttype"
)

var (
	pointType = payload.Define("Point",
		payload.ConstructorSpec{{Name: "x", Value: int32(0)}, {Name: "y", Value: int32(0)}},
		payload.FieldSpec{
			1: {Type: ttype.Scalar(ttype.I32), Name: "x"},
			2: {Type: ttype.Scalar(ttype.I32), Name: "y"},
		},
	)

	loosePointType = payload.Define("LoosePoint",
		payload.ConstructorSpec{{Name: "x", Value: nil}},
		payload.FieldSpec{1: {Type: ttype.Scalar(ttype.STRING), Name: "x"}},
	)

	widePointType = payload.Define("WidePoint",
		payload.ConstructorSpec{{Name: "x", Value: nil}, {Name: "z", Value: nil}},
		payload.FieldSpec{
			1: {Type: ttype.Scalar(ttype.I64), Name: "x"},
			9: {Type: ttype.Scalar(ttype.STRING), Name: "z"},
		},
	)

	shapeType = payload.Define("Shape",
		payload.ConstructorSpec{
			{Name: "name", Value: ""},
			{Name: "origin", Value: nil},
			{Name: "vertices", Value: nil},
			{Name: "tags", Value: nil},
			{Name: "weights", Value: nil},
			{Name: "scale", Value: 1.0},
			{Name: "closed", Value: false},
			{Name: "layer", Value: int8(0)},
			{Name: "blob", Value: nil},
			{Name: "serial", Value: int64(0)},
		},
		payload.FieldSpec{
			1:  {Type: ttype.Scalar(ttype.STRING), Name: "name"},
			2:  {Type: ttype.Struct(pointType), Name: "origin"},
			3:  {Type: ttype.List(ttype.Struct(pointType)), Name: "vertices"},
			4:  {Type: ttype.Set(ttype.Scalar(ttype.STRING)), Name: "tags"},
			5:  {Type: ttype.Map(ttype.Scalar(ttype.STRING), ttype.Scalar(ttype.I16)), Name: "weights"},
			6:  {Type: ttype.Scalar(ttype.DOUBLE), Name: "scale"},
			7:  {Type: ttype.Scalar(ttype.BOOL), Name: "closed"},
			8:  {Type: ttype.Scalar(ttype.BYTE), Name: "layer"},
			9:  {Type: ttype.Scalar(ttype.BINARY), Name: "blob"},
			10: {Type: ttype.Scalar(ttype.I64), Name: "serial"},
		},
	)

	lineType = payload.Define("Line",
		payload.ConstructorSpec{{Name: "start", Value: nil}},
		payload.FieldSpec{1: {Type: ttype.Struct(pointType), Name: "start"}},
	)

	looseLineType = payload.Define("LooseLine",
		payload.ConstructorSpec{{Name: "start", Value: nil}},
		payload.FieldSpec{1: {Type: ttype.Struct(loosePointType), Name: "start"}},
	)
)

func point(x, y int32) *payload.Payload {
	return pointType.MustNew(payload.With("x", x), payload.With("y", y))
}

func TestRoundTrip(t *testing.T) {
	in := shapeType.MustNew(
		payload.With("name", "tri"),
		payload.With("origin", point(1, 2)),
		payload.With("vertices", []any{point(0, 0), point(3, 0), point(0, 4)}),
		payload.With("tags", []any{"a", "b"}),
		payload.With("weights", map[any]any{"a": int16(-3), "b": int16(7)}),
		payload.With("scale", 0.5),
		payload.With("closed", true),
		payload.With("layer", int8(-2)),
		payload.With("blob", []byte{0x00, 0xff}),
		payload.With("serial", int64(1)<<40),
	)

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := shapeType.MustNew()
	if err := Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.Equal(out) {
		t.Errorf("round trip mismatch:\n in: %s\nout: %s", in, out)
	}
}

func TestRoundTripTypedCollections(t *testing.T) {
	numsType := payload.Define("Nums",
		payload.ConstructorSpec{{Name: "xs", Value: nil}, {Name: "weights", Value: nil}, {Name: "corners", Value: nil}},
		payload.FieldSpec{
			1: {Type: ttype.List(ttype.Scalar(ttype.I32)), Name: "xs"},
			2: {Type: ttype.Map(ttype.Scalar(ttype.STRING), ttype.Scalar(ttype.I16)), Name: "weights"},
			3: {Type: ttype.List(ttype.Struct(pointType)), Name: "corners"},
		},
	)
	in := numsType.MustNew(
		payload.With("xs", []int32{1, 2, 3}),
		payload.With("weights", map[string]int16{"a": -3, "b": 7}),
		payload.With("corners", []*payload.Payload{point(0, 0), point(1, 1)}),
	)

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := numsType.MustNew()
	if err := Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.Equal(out) || !out.Equal(in) {
		t.Errorf("round trip mismatch:\n in: %s\nout: %s", in, out)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	a, err := Marshal(point(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(point(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("encodings differ: %x vs %x", a, b)
	}

	diag, err := Diagnose(a)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if diag != "{1: 5, 2: 0}" {
		t.Errorf("Diagnose() = %q, want {1: 5, 2: 0}", diag)
	}
}

func TestWriterSkipsUnsetAndNil(t *testing.T) {
	p := shapeType.MustNew(payload.With("name", "x"))
	p.Unset("scale")
	p.Unset("closed")
	p.Unset("layer")
	p.Unset("serial")

	data, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	diag, _ := Diagnose(data)
	if diag != `{1: "x"}` {
		t.Errorf("Diagnose() = %s, want only field 1", diag)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	data, err := Marshal(loosePointType.MustNew(payload.With("x", "abc")))
	if err != nil {
		t.Fatal(err)
	}

	err = Unmarshal(data, pointType.MustNew())
	var decErr *payload.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Unmarshal() error = %v, want *payload.DecodeError", err)
	}
	want := "Field 'x(1)' of 'Point' needs type 'I32', but the value is `'abc'`"
	if decErr.Error() != want {
		t.Errorf("Error() = %q, want %q", decErr.Error(), want)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	data, err := Marshal(widePointType.MustNew(payload.With("x", int64(1)<<40)))
	if err != nil {
		t.Fatal(err)
	}

	err = Unmarshal(data, pointType.MustNew())
	var decErr *payload.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Unmarshal() error = %v, want *payload.DecodeError", err)
	}
	if decErr.Value() != int64(1)<<40 {
		t.Errorf("Value() = %v", decErr.Value())
	}
}

func TestDecodeNestedMismatch(t *testing.T) {
	in := looseLineType.MustNew(payload.With("start", loosePointType.MustNew(payload.With("x", "abc"))))
	data, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	err = Unmarshal(data, lineType.MustNew())
	var decErr *payload.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Unmarshal() error = %v, want *payload.DecodeError", err)
	}
	if decErr.StructName() != "Point" || decErr.FieldName() != "x" {
		t.Errorf("nested error reported at %s.%s, want Point.x", decErr.StructName(), decErr.FieldName())
	}
}

func TestDecodeListElementMismatch(t *testing.T) {
	tagsType := payload.Define("Tags",
		payload.ConstructorSpec{{Name: "tags", Value: nil}},
		payload.FieldSpec{4: {Type: ttype.List(ttype.Scalar(ttype.I32)), Name: "tags"}},
	)
	data, err := Marshal(tagsType.MustNew(payload.With("tags", []int32{1, 2})))
	if err != nil {
		t.Fatal(err)
	}

	// field 4 of Shape is SET<STRING>; integers do not fit
	err = Unmarshal(data, shapeType.MustNew())
	var decErr *payload.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Unmarshal() error = %v, want *payload.DecodeError", err)
	}
	want := "Field 'tags(4)' of 'Shape' needs type 'SET<STRING>', but the value is `[1, 2]`"
	if decErr.Error() != want {
		t.Errorf("Error() = %q, want %q", decErr.Error(), want)
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	data, err := Marshal(widePointType.MustNew(payload.With("x", int64(4)), payload.With("z", "extra")))
	if err != nil {
		t.Fatal(err)
	}

	out := pointType.MustNew()
	if err := Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !out.Equal(point(4, 0)) {
		t.Errorf("out = %s, want Point(x=4, y=0)", out)
	}
}

func TestDecodeInvalidInput(t *testing.T) {
	t.Run("truncated", func(t *testing.T) {
		err := Unmarshal([]byte{0xa1}, pointType.MustNew())
		if !errors.Is(err, &tcerrors.Error{Phase: tcerrors.PhaseDecode, Kind: tcerrors.KindInvalidData}) {
			t.Errorf("error = %v, want decode/invalid_data", err)
		}
	})

	t.Run("not a map", func(t *testing.T) {
		data, err := encMode.Marshal(5)
		if err != nil {
			t.Fatal(err)
		}
		err = Unmarshal(data, pointType.MustNew())
		if !errors.Is(err, &tcerrors.Error{Phase: tcerrors.PhaseDecode, Kind: tcerrors.KindInvalidData}) {
			t.Errorf("error = %v, want decode/invalid_data", err)
		}
	})

	t.Run("string key", func(t *testing.T) {
		data, err := encMode.Marshal(map[string]int{"x": 1})
		if err != nil {
			t.Fatal(err)
		}
		err = Unmarshal(data, pointType.MustNew())
		if !errors.Is(err, &tcerrors.Error{Phase: tcerrors.PhaseDecode, Kind: tcerrors.KindInvalidData}) {
			t.Errorf("error = %v, want decode/invalid_data", err)
		}
	})
}

func TestEncodeErrors(t *testing.T) {
	t.Run("type mismatch", func(t *testing.T) {
		_, err := Marshal(pointType.MustNew(payload.With("x", "abc")))
		var tErr *tcerrors.Error
		if !errors.As(err, &tErr) || tErr.Kind != tcerrors.KindTypeMismatch {
			t.Fatalf("Marshal() error = %v, want type_mismatch", err)
		}
		if strings.Join(tErr.Path, ".") != "Point.x" {
			t.Errorf("Path = %v, want Point.x", tErr.Path)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Marshal(pointType.MustNew(payload.With("x", int64(1)<<40)))
		if !errors.Is(err, &tcerrors.Error{Phase: tcerrors.PhaseEncode, Kind: tcerrors.KindOverflow}) {
			t.Errorf("Marshal() error = %v, want encode/overflow", err)
		}
	})

	t.Run("struct map key", func(t *testing.T) {
		typ := payload.Define("ByPoint",
			payload.ConstructorSpec{{Name: "m", Value: nil}},
			payload.FieldSpec{1: {Type: ttype.Map(ttype.Struct(pointType), ttype.Scalar(ttype.I32)), Name: "m"}},
		)
		_, err := Marshal(typ.MustNew(payload.With("m", map[any]any{})))
		if !errors.Is(err, &tcerrors.Error{Phase: tcerrors.PhaseEncode, Kind: tcerrors.KindUnsupported}) {
			t.Errorf("Marshal() error = %v, want encode/unsupported", err)
		}
	})

	t.Run("void field", func(t *testing.T) {
		typ := payload.Define("Hole",
			payload.ConstructorSpec{{Name: "v", Value: int32(1)}},
			payload.FieldSpec{1: {Type: ttype.Scalar(ttype.VOID), Name: "v"}},
		)
		_, err := Marshal(typ.MustNew())
		var e *tcerrors.Error
		if !errors.As(err, &e) || e.Kind != tcerrors.KindUnsupported {
			t.Fatalf("Marshal() error = %v, want encode/unsupported", err)
		}
		if e.ThriftType != "VOID" || strings.Join(e.Path, ".") != "Hole.v" {
			t.Errorf("ThriftType = %q, Path = %v", e.ThriftType, e.Path)
		}
	})
}

func TestTransportErrorRoundTrip(t *testing.T) {
	in := transport.NewError(transport.TimedOut, "slow peer")

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	out := &transport.Error{Exception: transport.ErrorType.MustNewException()}
	if err := Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Category() != transport.TimedOut || out.Message() != "slow peer" {
		t.Errorf("decoded = %s", out)
	}
	if out.Equal(in) {
		t.Error("a decoded exception is a new occurrence")
	}
}

func TestStreamOfStructs(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := int32(0); i < 3; i++ {
		if err := point(i, i*2).Write(w); err != nil {
			t.Fatal(err)
		}
	}

	r := NewReader(&buf)
	for i := int32(0); i < 3; i++ {
		p := pointType.MustNew()
		if err := p.Read(r); err != nil {
			t.Fatalf("Read() #%d error = %v", i, err)
		}
		if !p.Equal(point(i, i*2)) {
			t.Errorf("item %d = %s", i, p)
		}
	}
}
