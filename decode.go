package swiftnsv

import "io"

// Decode parses an NSV document into its rows of cells. The empty input
// yields a nil document (zero rows); any other input yields at least one
// row, and a row without field delimiters yields exactly one cell, so
// "no separator" and "no content" stay distinguishable. Escapes are
// resolved in the same left-to-right pass that locates the delimiters,
// so an escaped delimiter is never treated as a separator. A document
// ending in a row delimiter carries a final empty cell as its last row,
// exactly as Encode would have written it.
//
// A malformed escape anywhere fails the whole call with a *ParseError
// wrapping ErrMalformedEscape; no partial document is returned.
func Decode(input string) ([][]string, error) {
	if len(input) == 0 {
		return nil, nil
	}

	var doc [][]string
	row := make([]string, 0, 8)
	cell := make([]byte, 0, 64)
	rowNum := 1
	column := 1

	i := 0
	for i < len(input) {
		switch b := input[i]; b {
		case FieldDelimiter:
			row = append(row, string(cell))
			cell = cell[:0]
			i++
			column++
		case RowDelimiter:
			row = append(row, string(cell))
			cell = cell[:0]
			doc = append(doc, row)
			row = make([]string, 0, 8)
			i++
			rowNum++
			column = 1
		case EscapeMarker:
			if i+1 >= len(input) {
				return nil, &ParseError{Row: rowNum, Column: column, Err: ErrMalformedEscape}
			}
			lit, ok := literalFor(input[i+1])
			if !ok {
				return nil, &ParseError{Row: rowNum, Column: column, Err: ErrMalformedEscape}
			}
			cell = append(cell, lit)
			i += 2
			column += 2
		default:
			// Consume the run of plain bytes up to the next reserved byte.
			start := i
			for i < len(input) {
				c := input[i]
				if c == FieldDelimiter || c == RowDelimiter || c == EscapeMarker {
					break
				}
				i++
			}
			cell = append(cell, input[start:i]...)
			column += i - start
		}
	}

	row = append(row, string(cell))
	doc = append(doc, row)
	return doc, nil
}

// DecodeFrom reads r to EOF and decodes the accumulated document. Read
// errors are returned unchanged.
func DecodeFrom(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}
