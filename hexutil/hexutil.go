// Package hexutil renders byte sequences as hex for protocol debugging.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// DefaultCount is the number of hex groups Hexprint puts on one line.
const DefaultCount = 10

// Hexlify renders b as two-digit lowercase hex groups joined by delim.
func Hexlify(b []byte, delim string) string {
	if len(b) == 0 {
		return ""
	}
	s := hex.EncodeToString(b)
	var sb strings.Builder
	sb.Grow(len(s) + (len(b)-1)*len(delim))
	for i := 0; i < len(s); i += 2 {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(s[i : i+2])
	}
	return sb.String()
}

// Hexprint writes a debug dump of b: the quoted bytes, then the hex groups
// count per line. A count below one uses DefaultCount.
func Hexprint(w io.Writer, b []byte, count int) error {
	if count < 1 {
		count = DefaultCount
	}
	if _, err := fmt.Fprintf(w, "Bytes:\n%q\n\nHex:\n", b); err != nil {
		return err
	}
	for _, line := range Lines(b, count) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Lines renders b as space-separated hex groups, count groups per line.
func Lines(b []byte, count int) []string {
	if count < 1 {
		count = DefaultCount
	}
	var lines []string
	for start := 0; start < len(b); start += count {
		end := min(start+count, len(b))
		lines = append(lines, Hexlify(b[start:end], " "))
	}
	return lines
}
