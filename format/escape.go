package format

import "strings"

// NeedsEscaping reports whether value contains a character that collides with
// the segment or value delimiters, or the escape character itself.
func NeedsEscaping(value string) bool {
	return strings.ContainsAny(value, `\:;`)
}

// AppendValue appends value to dst, backslash-escaping '\', ':' and ';' when
// escaped is true. With escaped false the value is appended verbatim.
func AppendValue(dst []byte, value string, escaped bool) []byte {
	if !escaped || !NeedsEscaping(value) {
		return append(dst, value...)
	}

	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == EscapeChar || c == ValueSep || c == SegmentSep {
			dst = append(dst, EscapeChar)
		}
		dst = append(dst, c)
	}

	return dst
}

// Unescape removes the backslash in front of every escaped byte.
// A trailing lone backslash is kept literally.
func Unescape(value string) string {
	if strings.IndexByte(value, EscapeChar) < 0 {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == EscapeChar && i+1 < len(value) {
			i++
			c = value[i]
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

// Split slices s around every occurrence of sep.
//
// When escaped is true, a separator preceded by the escape character does not
// split; the escape sequences are left in the returned parts for Unescape.
// When escaped is false, Split behaves exactly like strings.Split.
func Split(s string, sep byte, escaped bool) []string {
	if !escaped || strings.IndexByte(s, EscapeChar) < 0 {
		return strings.Split(s, string(sep))
	}

	parts := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case EscapeChar:
			i++
		case sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}
