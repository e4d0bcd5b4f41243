package console

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCoordinates = errors.New("invalid grid coordinates")

const (
	columns = "ABC"
	rows    = "123"
)

// ParseCoordinates - converts "A1".."C3" (column letter, row number) into a cell index.
func ParseCoordinates(value string) (int, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if len(value) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, value)
	}

	col := strings.IndexByte(columns, value[0])
	row := strings.IndexByte(rows, value[1])
	if col < 0 || row < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, value)
	}

	return 3*row + col, nil
}

// FormatCoordinates - the reverse of ParseCoordinates.
func FormatCoordinates(index int) string {
	if index < 0 || index >= len(columns)*len(rows) {
		return "??"
	}

	return string([]byte{columns[index%3], rows[index/3]})
}
