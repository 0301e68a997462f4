// # SwiftNSV: A Reversible Delimited-Text Codec for Go
//
// SwiftNSV encodes and decodes NSV, a quote-free row/column text format. Rows are separated by the ASCII record separator (0x1E), cells within a row by the ASCII unit separator (0x1F), and a backslash escape makes every string representable — including the delimiters themselves, embedded newlines, and empty cells — so that decoding the output of encoding always reproduces the original rows.
//
// # Features
//
// - `Encode` and `Decode` for whole documents, plus `EncodeTo` and `DecodeFrom` for io endpoints.
// - Single-pass, linear-time escaping with one byte of lookahead; no quoting modes and no backtracking.
// - Structured error reporting via `ParseError` and `ErrMalformedEscape` with row/column positions.
// - Buffered streaming `Writer` whose byte stream is identical to `Encode` output.
// - Benchmarks, fuzz targets, and table-driven unit tests for regression protection.
//
// # Escaping
//
// Three bytes are reserved: the field delimiter (0x1F), the row delimiter (0x1E), and the escape marker ('\'). Inside a cell they serialize as `\f`, `\r`, and `\\` respectively; every other byte passes through unchanged. An escape marker not followed by one of those three codes fails decoding with `ErrMalformedEscape`.
//
// # Boundaries
//
// The empty string decodes to zero rows. Encoding zero rows, one row with zero cells, or one row whose only cell is empty all yield the empty string; this collapse at the empty boundary is the format's single deliberate asymmetry, and `Encode(Decode(Encode(rows)))` still equals `Encode(rows)` for every input.
//
// # Getting Started
//
// The module path is `github.com/oleg578/swiftnsv`. Import it directly when working inside this repository or adjust the module path to match your fork or remote.
package swiftnsv
