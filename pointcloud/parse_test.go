package pointcloud

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected []r3.Vector
	}{
		{
			name:     "spaces",
			input:    "1 2 3\n4 5 6\n",
			expected: []r3.Vector{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		},
		{
			name:     "commas",
			input:    "1,2,3\n4, 5, 6\n-1.5 ,2e3,  .25",
			expected: []r3.Vector{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}, {X: -1.5, Y: 2000, Z: 0.25}},
		},
		{
			name:     "comments and empty lines",
			input:    "# a comment\n\n1 2 3\n#4 5 6\n\n",
			expected: []r3.Vector{{X: 1, Y: 2, Z: 3}},
		},
		{
			name:     "tabs and windows line endings",
			input:    "1\t2\t3\r\n4 5 6\r\n",
			expected: []r3.Vector{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}},
		},
		{
			name:     "short lines are skipped",
			input:    "1 2\n3\n   \n1 2 3\n",
			expected: []r3.Vector{{X: 1, Y: 2, Z: 3}},
		},
		{
			name:     "extra values are ignored",
			input:    "1 2 3 4 5\n",
			expected: []r3.Vector{{X: 1, Y: 2, Z: 3}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			points, err := Parse(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, points)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("# header\n1 2 3\n1 two 3\n"))
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, 3, syntaxErr.Line)
	require.Equal(t, "two", syntaxErr.Value)
	require.EqualError(t, err, `line 3: invalid coordinate "two"`)
}

func TestRead(t *testing.T) {
	input := "# cube corner\n0 0 0\n1 0 0\n0 1 0\n0 0 1\n"

	points, size, err := Read(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, points, 4)
	require.Equal(t, len(input), size)
}

func TestReadLargeInput(t *testing.T) {
	// more than the sniffed prefix, to make sure the parser starts at the beginning
	var buf bytes.Buffer
	for i := range 1000 {
		buf.WriteString(strings.Repeat(" ", i%3))
		buf.WriteString("1.25, 2.5, 3.75\n")
	}

	points, size, err := Read(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, points, 1000)
	require.Greater(t, size, sniffLen)
	require.Equal(t, r3.Vector{X: 1.25, Y: 2.5, Z: 3.75}, points[0])
}

func TestReadBinary(t *testing.T) {
	input := []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe, 0x00, 0x10}

	_, _, err := Read(context.Background(), bytes.NewReader(input))
	require.ErrorIs(t, err, ErrBinary)
}

func TestReadSyntaxError(t *testing.T) {
	_, _, err := Read(context.Background(), strings.NewReader("1 2 x\n"))

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, 1, syntaxErr.Line)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.xyz")
	require.NoError(t, os.WriteFile(path, []byte("0 0 0\n1 1 1\n"), 0o644))

	points, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, []r3.Vector{{}, {X: 1, Y: 1, Z: 1}}, points)

	_, err = ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.xyz"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"dropped/points.xyz": &fstest.MapFile{Data: []byte("1,2,3\n")},
	}

	points, err := ReadFS(context.Background(), fsys, "dropped/points.xyz")
	require.NoError(t, err)
	require.Equal(t, []r3.Vector{{X: 1, Y: 2, Z: 3}}, points)

	_, err = ReadFS(context.Background(), fsys, "other.xyz")
	require.Error(t, err)
}
