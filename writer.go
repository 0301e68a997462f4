package swiftnsv

import (
	"bufio"
	"errors"
	"io"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var (
	errNilWriter      = errors.New("swiftnsv: writer is nil")
	errWriterNoTarget = errors.New("swiftnsv: writer destination cannot be nil")
)

// Writer emits NSV rows incrementally to an io.Writer. The row delimiter
// is written between records rather than after each one, so the byte
// stream produced by Write calls followed by Flush is identical to
// Encode of the same records.
type Writer struct {
	dst *bufio.Writer

	wroteRow bool
	err      error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst: bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Reset updates the underlying writer, clearing the stored error and the
// record-separator state so the next Write starts a fresh document.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.wroteRow = false
	w.err = nil
}

// Write emits a single NSV record. Cells are escaped and joined with the
// field delimiter; a record with zero cells contributes no bytes of its
// own, matching Encode.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	if w.wroteRow {
		if err := w.dst.WriteByte(RowDelimiter); err != nil {
			w.err = err
			return err
		}
	}
	w.wroteRow = true

	for i := range record {
		if i > 0 {
			if err := w.dst.WriteByte(FieldDelimiter); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeCell(record[i]); err != nil {
			w.err = err
			return err
		}
	}
	return nil
}

// WriteAll writes multiple records, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) writeCell(cell string) error {
	if !cellNeedsEscape(cell) {
		_, err := w.dst.WriteString(cell)
		return err
	}

	start := 0
	for i := 0; i < len(cell); i++ {
		code, ok := escapeCode(cell[i])
		if !ok {
			continue
		}
		if start < i {
			if _, err := w.dst.WriteString(cell[start:i]); err != nil {
				return err
			}
		}
		if _, err := w.dst.Write([]byte{EscapeMarker, code}); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(cell) {
		if _, err := w.dst.WriteString(cell[start:]); err != nil {
			return err
		}
	}
	return nil
}
