package swiftnsv

import "io"

// Encode serializes rows of cells into an NSV document: every cell is
// escaped, cells are joined with a single field delimiter, and rows are
// joined with a single row delimiter. No trailing row delimiter is
// emitted, so "zero rows" and "one empty row" both serialize to the
// empty string. Encode is total; every possible document is representable.
func Encode(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	// Pre-size for the common case of cells without reserved bytes;
	// escaping may still grow the buffer.
	size := len(rows) - 1
	for _, row := range rows {
		for _, cell := range row {
			size += len(cell)
		}
		if len(row) > 0 {
			size += len(row) - 1
		}
	}

	out := make([]byte, 0, size)
	for i, row := range rows {
		if i > 0 {
			out = append(out, RowDelimiter)
		}
		for j, cell := range row {
			if j > 0 {
				out = append(out, FieldDelimiter)
			}
			out = appendEscaped(out, cell)
		}
	}
	return string(out)
}

// EncodeTo streams the NSV serialization of rows to w. The bytes written
// are identical to Encode(rows).
func EncodeTo(w io.Writer, rows [][]string) error {
	nw := NewWriter(w)
	if err := nw.WriteAll(rows); err != nil {
		return err
	}
	return nw.Flush()
}
