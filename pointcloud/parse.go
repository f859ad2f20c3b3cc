// Package pointcloud reads and generates point clouds for hull computation.
//
// The text format has one point per line, coordinates separated by
// whitespace or commas. Empty lines and lines starting with '#' are ignored,
// as are lines with fewer than three values. Values after the third are
// ignored as well.
package pointcloud

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// longest line we accept
const maxLineLength = 1 << 20

// SyntaxError reports a value that could not be parsed as a number.
type SyntaxError struct {
	Line  int
	Value string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: invalid coordinate %q", e.Line, e.Value)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse reads all points from r.
func Parse(r io.Reader) ([]r3.Vector, error) {
	var points []r3.Vector

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	var lineNo int
	for scanner.Scan() {
		lineNo++

		point, ok, err := parseLine(lineNo, scanner.Text())
		if err != nil {
			return nil, err
		}

		if ok {
			points = append(points, point)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read line %d", lineNo+1)
	}

	return points, nil
}

func parseLine(lineNo int, line string) (r3.Vector, bool, error) {
	if line == "" || line[0] == '#' {
		return r3.Vector{}, false, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})

	if len(fields) < 3 {
		return r3.Vector{}, false, nil
	}

	var coords [3]float64
	for idx := range coords {
		value, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return r3.Vector{}, false, &SyntaxError{Line: lineNo, Value: fields[idx], Err: err}
		}

		coords[idx] = value
	}

	return r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}, true, nil
}
