package swiftnsv

import (
	"errors"
	"testing"
)

// String forms of the reserved bytes, for readable test literals.
const (
	fd  = "\x1f"
	rd  = "\x1e"
	esc = "\\"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want string
	}{
		{name: "empty", cell: "", want: ""},
		{name: "noSpecialChars", cell: "hello", want: "hello"},
		{name: "fieldDelimiter", cell: fd, want: `\f`},
		{name: "rowDelimiter", cell: rd, want: `\r`},
		{name: "escapeMarker", cell: esc, want: `\\`},
		{name: "fieldDelimiterInMiddle", cell: "a" + fd + "b", want: `a\fb`},
		{name: "escapeMarkerInMiddle", cell: `a\b`, want: `a\\b`},
		{name: "escapeMarkerThenLetterF", cell: `\f`, want: `\\f`},
		{name: "escapeMarkerThenDelimiter", cell: esc + fd, want: `\\\f`},
		{name: "multipleEscapeMarkers", cell: `\\`, want: `\\\\`},
		{name: "multipleDelimiters", cell: fd + fd + rd, want: `\f\f\r`},
		{name: "alternating", cell: esc + rd + esc + rd, want: `\\\r\\\r`},
		{name: "plainNewlineUnchanged", cell: "line1\nline2", want: "line1\nline2"},
		{name: "carriageReturnUnchanged", cell: "a\r\nb", want: "a\r\nb"},
		{name: "letterCodesUnchanged", cell: "fr", want: "fr"},
		{name: "mixed", cell: esc + "a" + rd + "b" + esc, want: `\\a\rb\\`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Escape(tc.cell); got != tc.want {
				t.Fatalf("Escape(%q) = %q, want %q", tc.cell, got, tc.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want string
	}{
		{name: "empty", cell: "", want: ""},
		{name: "noEscapes", cell: "hello", want: "hello"},
		{name: "fieldDelimiterCode", cell: `\f`, want: fd},
		{name: "rowDelimiterCode", cell: `\r`, want: rd},
		{name: "escapeMarkerCode", cell: `\\`, want: esc},
		{name: "escapedThenLetter", cell: `\\f`, want: `\f`},
		{name: "rawDelimiterCopied", cell: "a" + fd + "b", want: "a" + fd + "b"},
		{name: "plainNewline", cell: "a\nb", want: "a\nb"},
		{name: "mixed", cell: `\\a\rb\\`, want: esc + "a" + rd + "b" + esc},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Unescape(tc.cell)
			if err != nil {
				t.Fatalf("Unescape(%q) error = %v", tc.cell, err)
			}
			if got != tc.want {
				t.Fatalf("Unescape(%q) = %q, want %q", tc.cell, got, tc.want)
			}
		})
	}
}

func TestUnescapeMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cell   string
		column int
	}{
		{name: "trailingMarker", cell: `abc\`, column: 4},
		{name: "loneMarker", cell: `\`, column: 1},
		{name: "invalidCode", cell: `\q`, column: 1},
		{name: "invalidCodeAfterValid", cell: `\\\x`, column: 3},
		{name: "oddMarkerRun", cell: `\\\`, column: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unescape(tc.cell)
			if err == nil {
				t.Fatalf("Unescape(%q) expected error, got nil", tc.cell)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Unescape(%q) returned error %T, want *ParseError", tc.cell, err)
			}
			if !errors.Is(perr.Err, ErrMalformedEscape) {
				t.Fatalf("ParseError.Err = %v, want ErrMalformedEscape", perr.Err)
			}
			if perr.Column != tc.column {
				t.Fatalf("ParseError.Column = %d, want %d", perr.Column, tc.column)
			}
		})
	}
}

func TestEscapeUnescapeInverse(t *testing.T) {
	t.Parallel()

	cells := []string{
		"",
		"hello",
		esc,
		fd,
		rd,
		`\f`,
		`\r`,
		esc + fd,
		"a" + esc + "b" + rd + "c",
		esc + esc + esc,
		fd + fd + rd + rd,
		"test" + esc + " " + rd + " end",
		"line1\nline2",
		"\x00\x01\x02",
		"héllo wörld",
	}

	for _, cell := range cells {
		got, err := Unescape(Escape(cell))
		if err != nil {
			t.Fatalf("Unescape(Escape(%q)) error = %v", cell, err)
		}
		if got != cell {
			t.Fatalf("Unescape(Escape(%q)) = %q, want original", cell, got)
		}
	}
}
