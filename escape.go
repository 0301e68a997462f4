package swiftnsv

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved bytes of the NSV format. They are fixed properties of the
// format shared by the encoder and the decoder, not per-call options.
const (
	// FieldDelimiter separates cells within a row (ASCII unit separator).
	FieldDelimiter byte = 0x1F
	// RowDelimiter separates rows within a document (ASCII record separator).
	RowDelimiter byte = 0x1E
	// EscapeMarker introduces a two-byte escape sequence for a reserved byte.
	EscapeMarker byte = '\\'
)

// Escape codes: the byte following EscapeMarker that selects which
// reserved byte the sequence stands for.
const (
	codeField  byte = 'f'
	codeRow    byte = 'r'
	codeEscape byte = '\\'
)

// ErrMalformedEscape is returned when an escape marker is not followed by a
// valid escape code, including an escape marker at the very end of the input.
var ErrMalformedEscape = errors.New("swiftnsv: malformed escape sequence")

// ParseError contains location information for NSV decoding errors.
// Row is 1-based; Column is the 1-based byte position of the offending
// escape marker within its row.
type ParseError struct {
	Row    int
	Column int
	Err    error
}

// Error formats the parse error message with the stored row, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("swiftnsv: parse error on row %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// escapeCode reports the escape code for b and whether b is reserved.
func escapeCode(b byte) (byte, bool) {
	switch b {
	case FieldDelimiter:
		return codeField, true
	case RowDelimiter:
		return codeRow, true
	case EscapeMarker:
		return codeEscape, true
	}
	return 0, false
}

// literalFor reports the reserved byte an escape code stands for and
// whether code is one of the three valid codes.
func literalFor(code byte) (byte, bool) {
	switch code {
	case codeField:
		return FieldDelimiter, true
	case codeRow:
		return RowDelimiter, true
	case codeEscape:
		return EscapeMarker, true
	}
	return 0, false
}

// cellNeedsEscape reports whether cell contains any reserved byte.
func cellNeedsEscape(cell string) bool {
	for i := 0; i < len(cell); i++ {
		switch cell[i] {
		case FieldDelimiter, RowDelimiter, EscapeMarker:
			return true
		}
	}
	return false
}

// appendEscaped appends the serialized form of cell to dst and returns the
// extended buffer. Runs of plain bytes are copied in single appends.
func appendEscaped(dst []byte, cell string) []byte {
	start := 0
	for i := 0; i < len(cell); i++ {
		code, ok := escapeCode(cell[i])
		if !ok {
			continue
		}
		dst = append(dst, cell[start:i]...)
		dst = append(dst, EscapeMarker, code)
		start = i + 1
	}
	return append(dst, cell[start:]...)
}

// Escape returns the serialized form of a single raw cell: every reserved
// byte becomes a two-byte escape sequence and every other byte is emitted
// unchanged, embedded newlines included. A cell without reserved bytes is
// returned as-is without allocation.
func Escape(cell string) string {
	if !cellNeedsEscape(cell) {
		return cell
	}
	return string(appendEscaped(make([]byte, 0, 2*len(cell)), cell))
}

// Unescape reverses Escape for a single serialized cell. Bytes other than
// the escape marker are copied unchanged, so a caller may pass raw
// delimiter bytes through. An escape marker followed by anything but a
// valid escape code, or ending the input, fails with a *ParseError
// wrapping ErrMalformedEscape; Column is the position of the marker.
func Unescape(cell string) (string, error) {
	if strings.IndexByte(cell, EscapeMarker) < 0 {
		return cell, nil
	}
	out := make([]byte, 0, len(cell))
	for i := 0; i < len(cell); i++ {
		b := cell[i]
		if b != EscapeMarker {
			out = append(out, b)
			continue
		}
		if i+1 >= len(cell) {
			return "", &ParseError{Row: 1, Column: i + 1, Err: ErrMalformedEscape}
		}
		lit, ok := literalFor(cell[i+1])
		if !ok {
			return "", &ParseError{Row: 1, Column: i + 1, Err: ErrMalformedEscape}
		}
		out = append(out, lit)
		i++
	}
	return string(out), nil
}
