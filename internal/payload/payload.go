// Package payload vets and formats the bytes bclip moves between
// standard streams and a clipboard.
package payload

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Verdict is the result of scanning a buffer.
type Verdict struct {
	Clean  bool
	Offset int // offset of the first disallowed byte; -1 when Clean
}

// allowed control bytes in text input.
func allowedControl(b byte) bool {
	return b == '\n' || b == '\r' || b == '\t' || b == '\f'
}

// Validate scans buf once and reports whether it looks like text.  NUL,
// DEL and any C0 control byte other than \n \r \t \f mark the buffer as
// binary-suspect.
func Validate(buf []byte) Verdict {
	for i, b := range buf {
		if b == 0x7f || (b < 0x20 && !allowedControl(b)) {
			return Verdict{Offset: i}
		}
	}
	return Verdict{Clean: true, Offset: -1}
}

// TrimNewline drops exactly one trailing '\n'.
func TrimNewline(buf []byte) []byte {
	if n := len(buf); n > 0 && buf[n-1] == '\n' {
		return buf[:n-1]
	}
	return buf
}

// Preview renders the summary printed by --preview.
func Preview(buf []byte, limit int) string {
	if len(buf) == 0 {
		return "Copied: <empty> (0 bytes)"
	}

	chars := utf8.RuneCount(buf)
	s := string(buf)
	shown, n := s, 0
	for i := range s {
		if n == limit {
			shown = s[:i]
			break
		}
		n++
	}

	text := Escape(shown)
	if chars > limit {
		text += "..."
	}
	return fmt.Sprintf("Copied: \"%s\" (%d bytes, %d chars)", text, len(buf), chars)
}

// Escape makes control characters visible.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\f':
			b.WriteString(`\f`)
		case r < 0x20 || (r >= 0x7f && r <= 0x9f):
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
