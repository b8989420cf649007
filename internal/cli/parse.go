package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/xcover/exactcover"
)

// errBadCell reports a matrix cell that is neither 0 nor 1.
var errBadCell = errors.New("cli: matrix cells must be 0 or 1")

// parseRelation reads a boolean incidence matrix from r. One line per row;
// cells are either whitespace-separated ("1 0 1") or contiguous digits
// ("101"). Blank lines and lines starting with '#' are skipped. All rows
// must have the same length.
func parseRelation(r io.Reader) (*exactcover.Relation, error) {
	var (
		rows    [][]bool
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cli: reading matrix: %w", err)
	}

	rel, err := exactcover.RelationFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("cli: building relation: %w", err)
	}

	return rel, nil
}

// parseRow converts one non-empty matrix line into a boolean row.
func parseRow(line string) ([]bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && len(fields[0]) > 1 {
		// Contiguous form: each character is a cell.
		fields = strings.Split(fields[0], "")
	}
	row := make([]bool, len(fields))
	for i, f := range fields {
		switch f {
		case "0":
			row[i] = false
		case "1":
			row[i] = true
		default:
			return nil, fmt.Errorf("%w: got %q", errBadCell, f)
		}
	}

	return row, nil
}
