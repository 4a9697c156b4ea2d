package domain

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// EscapeMarker introduces a two-digit hex escape in an encoded identifier.
const EscapeMarker = '_'

const upperHex = "0123456789ABCDEF"

// Encoder is a reversible transform from arbitrary text to the local-id
// alphabet [A-Za-z0-9._-].
//
// Characters outside the unreserved set are written as UTF-8 style byte
// sequences, one "_XX" escape per byte. By default the transform works on
// UTF-16 code units, which keeps the wire bytes identical to existing
// providers; characters outside the basic multilingual plane are then
// written as two three-byte surrogate sequences. WithScalarValues switches to
// Unicode scalar values and emits true four-byte UTF-8 for those characters.
//
// An Encoder holds no mutable state and is safe for concurrent use.
type Encoder struct {
	scalar bool
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithScalarValues encodes whole Unicode scalar values instead of UTF-16
// code units.
func WithScalarValues() EncoderOption {
	return func(e *Encoder) {
		e.scalar = true
	}
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

// DefaultEncoder returns the shared code-unit encoder used by the package
// level constructors.
func DefaultEncoder() *Encoder {
	return defaultEncoder
}

// ScalarValues reports whether e encodes Unicode scalar values.
func (e *Encoder) ScalarValues() bool {
	return e.scalar
}

// Encode returns the local-id form of s. It never fails.
//
// Round trip is exact for valid UTF-8; invalid bytes are encoded as U+FFFD.
func (e *Encoder) Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x10000 && !e.scalar {
			hi, lo := utf16.EncodeRune(r)
			writeUnit(&b, hi)
			writeUnit(&b, lo)
			continue
		}
		writeUnit(&b, r)
	}
	return b.String()
}

func writeUnit(b *strings.Builder, c rune) {
	switch {
	case c < 0x80:
		if isUnreserved(byte(c), b.Len() == 0) {
			b.WriteByte(byte(c))
			return
		}
		writeEscape(b, byte(c))
	case c < 0x800:
		writeEscape(b, byte(0xC0|c>>6))
		writeEscape(b, byte(0x80|c&0x3F))
	case c < 0x10000:
		writeEscape(b, byte(0xE0|c>>12))
		writeEscape(b, byte(0x80|(c>>6)&0x3F))
		writeEscape(b, byte(0x80|c&0x3F))
	default:
		writeEscape(b, byte(0xF0|c>>18))
		writeEscape(b, byte(0x80|(c>>12)&0x3F))
		writeEscape(b, byte(0x80|(c>>6)&0x3F))
		writeEscape(b, byte(0x80|c&0x3F))
	}
}

// isUnreserved reports whether c may appear literally. A digit can not lead
// an encoded fragment.
func isUnreserved(c byte, first bool) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	case c == '.' || c == '-':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func writeEscape(b *strings.Builder, v byte) {
	b.WriteByte(EscapeMarker)
	b.WriteByte(upperHex[v>>4])
	b.WriteByte(upperHex[v&0x0F])
}

// Decode reverses Encode. It accepts any input and never fails: a truncated
// escape or an unfinished multi-byte run at the end of s is dropped, and a
// marker that is not followed by two hex digits is kept as a literal.
func (e *Encoder) Decode(s string) string {
	var (
		out   unitWriter
		acc   rune
		pos   int
		width int
	)
	out.b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != EscapeMarker {
			r, size := utf8.DecodeRuneInString(s[i:])
			acc, pos = 0, 0
			out.put(r)
			i += size
			continue
		}
		if i+2 >= len(s) {
			break
		}
		hi, ok1 := fromHex(s[i+1])
		lo, ok2 := fromHex(s[i+2])
		if !ok1 || !ok2 {
			acc, pos = 0, 0
			out.put(EscapeMarker)
			i++
			continue
		}
		i += 3

		v := rune(hi<<4 | lo)
		if pos == 0 {
			width, v = leadByte(v)
		} else {
			v &= 0x3F
		}
		acc |= v << (6 * (width - 1 - pos))
		pos++
		if pos >= width {
			out.put(acc)
			acc, pos = 0, 0
		}
	}
	return out.String()
}

// leadByte returns the run length announced by the first byte of a sequence
// together with the payload bits of that byte.
func leadByte(v rune) (int, rune) {
	switch {
	case v <= 0x7F:
		return 1, v & 0x7F
	case v >= 0xC2 && v <= 0xDF:
		return 2, v & 0x1F
	case v >= 0xE0 && v <= 0xEF:
		return 3, v & 0x0F
	case v >= 0xF0 && v <= 0xF4:
		return 4, v & 0x07
	default:
		return 1, v
	}
}

func fromHex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// unitWriter collects decoded units, joining UTF-16 surrogate halves back
// into a single rune. Unpaired halves become U+FFFD.
type unitWriter struct {
	b    strings.Builder
	high rune
}

func (w *unitWriter) put(r rune) {
	if w.high != 0 {
		if r >= 0xDC00 && r <= 0xDFFF {
			w.b.WriteRune(utf16.DecodeRune(w.high, r))
			w.high = 0
			return
		}
		w.b.WriteRune(utf8.RuneError)
		w.high = 0
	}
	if r >= 0xD800 && r <= 0xDBFF {
		w.high = r
		return
	}
	w.b.WriteRune(r)
}

func (w *unitWriter) String() string {
	if w.high != 0 {
		w.b.WriteRune(utf8.RuneError)
		w.high = 0
	}
	return w.b.String()
}

// Encode encodes s with the default encoder.
func Encode(s string) string {
	return defaultEncoder.Encode(s)
}

// Decode decodes s with the default encoder.
func Decode(s string) string {
	return defaultEncoder.Decode(s)
}
