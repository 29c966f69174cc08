package rawuri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/rawuri/internal/constraints"
)

const upperhex = "0123456789ABCDEF"

// IsUnreserved reports whether c is in the RFC 3986 unreserved set and so
// needs no percent-escaping: ASCII letters, digits, '-', '.', '_' and '~'.
// Every byte outside ASCII is reserved.
func IsUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// Escape replaces every byte of s outside the unreserved set with its
// "%XX" uppercase hex form. An all-unreserved input is returned unchanged.
func Escape[T constraints.Byteseq](s T) T {
	var esc int
	for i := 0; i < len(s); i++ {
		if !IsUnreserved(s[i]) {
			esc++
		}
	}
	if esc == 0 {
		return s
	}

	b := make([]byte, 0, len(s)+2*esc)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case IsUnreserved(c):
			b = append(b, c)
		default:
			b = append(b, '%', upperhex[c>>4], upperhex[c&15])
		}
	}
	return T(b)
}

// Unescape converts each 3-byte "%XX" escape of s into the hex-decoded
// byte. It fails with [ErrInvalidEscape] when a '%' is followed by fewer
// than two bytes or by bytes that are not hexadecimal digits; hex digits
// are matched case-insensitively. An input without '%' is returned
// unchanged.
func Unescape[T constraints.Byteseq](s T) (T, error) {
	var esc int
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			esc++
		}
	}
	if esc == 0 {
		return s, nil
	}

	var zero T
	size := len(s) - 2*esc
	if size < 0 {
		// Some '%' is short of two trailing bytes, the main pass below
		// would fail on it anyway.
		return zero, errtrace.Wrap(ErrInvalidEscape)
	}

	b := make([]byte, 0, size)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b = append(b, c)
			continue
		}
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			return zero, errtrace.Wrap(ErrInvalidEscape)
		}
		b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 2
	}
	return T(b), nil
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
