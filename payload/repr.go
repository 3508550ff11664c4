package payload

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Repr renders a field value the way struct string forms show it: strings
// quoted, byte strings prefixed with b, nested structs recursively,
// containers element by element with map keys sorted by their rendering.
func Repr(v any) string {
	var b strings.Builder
	writeRepr(&b, v)
	return b.String()
}

func writeRepr(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteString("nil")
	case string:
		writeQuoted(b, x, "")
	case []byte:
		writeQuoted(b, string(x), "b")
	case Struct:
		b.WriteString(x.String())
	case fmt.Stringer:
		b.WriteString(x.String())
	default:
		writeReflect(b, reflect.ValueOf(v))
	}
}

func writeReflect(b *strings.Builder, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			b.WriteString("nil")
			return
		}
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, rv.Index(i).Interface())
		}
		b.WriteByte(']')
	case reflect.Map:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		entries := make([][2]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, [2]string{Repr(iter.Key().Interface()), Repr(iter.Value().Interface())})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i][0] < entries[j][0] })
		b.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e[0])
			b.WriteString(": ")
			b.WriteString(e[1])
		}
		b.WriteByte('}')
	case reflect.Pointer:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		writeRepr(b, rv.Elem().Interface())
	default:
		fmt.Fprint(b, rv.Interface())
	}
}

// writeQuoted uses single quotes unless the text contains a single quote and
// no double quote.
func writeQuoted(b *strings.Builder, s, prefix string) {
	quote := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		quote = '"'
	}
	b.WriteString(prefix)
	b.WriteByte(quote)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(`\x`)
			b.WriteString(strconv.FormatUint(uint64(s[i])|0x100, 16)[1:])
		case r == rune(quote) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			b.WriteString(`\x`)
			b.WriteString(strconv.FormatUint(uint64(r)|0x100, 16)[1:])
		default:
			b.WriteRune(r)
		}
		i += size
	}
	b.WriteByte(quote)
}
