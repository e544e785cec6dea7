package ligature

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/puashape/core"
)

// RowReader streams table rows from a line-oriented text source. Every
// non-empty line holds a PUA code-point (hex), a glyph index (decimal) and
// the hex tokens of the ligature's decomposition:
//
//	# KSSA
//	E000  301  0915 094D 0937
//	E001  302  0924 094D 0930   ! suspect
//
// Text after '#' is ignored. Markers after '!' set row flags: "suspect" marks
// questionable data, "initial" marks the word-initial variant of a ligature
// which shares its decomposition with another row.
type RowReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewRowReader creates a row reader for r.
func NewRowReader(r io.Reader) *RowReader {
	return &RowReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next row. It returns io.EOF when exhausted.
func (rr *RowReader) Next() (Row, error) {
	for rr.scanner.Scan() {
		rr.line++
		line := rr.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		var flags Flags
		if i := strings.IndexByte(line, '!'); i >= 0 {
			for _, marker := range strings.Fields(line[i+1:]) {
				switch marker {
				case "suspect":
					flags |= Suspect
				case "initial":
					flags |= InitialForm
				}
			}
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return Row{}, core.Error(core.EMALFORMED,
				"line %d: expected PUA, glyph and at least 2 code-points", rr.line)
		}
		pua, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "U+"), 16, 32)
		if err != nil {
			return Row{}, core.WrapError(err, core.EMALFORMED, "line %d: PUA code-point", rr.line)
		}
		glyph, err := strconv.Atoi(fields[1])
		if err != nil {
			return Row{}, core.WrapError(err, core.EMALFORMED, "line %d: glyph index", rr.line)
		}
		return Row{
			PUA:   rune(pua),
			Glyph: glyph,
			Seq:   strings.Join(fields[2:], " "),
			Flags: flags,
		}, nil
	}
	if err := rr.scanner.Err(); err != nil {
		return Row{}, core.WrapError(err, core.EMALFORMED, "reading table rows")
	}
	return Row{}, io.EOF
}

// ReadRows reads all rows from r.
func ReadRows(r io.Reader) ([]Row, error) {
	rr := NewRowReader(r)
	var rows []Row
	for {
		row, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	tracer().Infof("read %d ligature rows", len(rows))
	return rows, nil
}
