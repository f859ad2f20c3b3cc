package pointcloud

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/neilotoole/streamcache"
	"github.com/pkg/errors"
)

// number of bytes looked at to decide if the input is text
const sniffLen = 512

// ErrBinary is returned when the input does not look like a text file.
var ErrBinary = errors.New("pointcloud: input is not a text file")

// Read parses the points from r after checking that r contains text.
// It returns the points and the number of bytes read.
func Read(ctx context.Context, r io.Reader) ([]r3.Vector, int, error) {
	cache := streamcache.New(r)

	// both readers are created before sealing, so both start at the first byte
	sniffer := cache.NewReader(ctx)
	parser := cache.NewReader(ctx)
	cache.Seal()

	defer func() { _ = parser.Close() }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(sniffer, head)
	_ = sniffer.Close()

	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, 0, errors.Wrap(err, "sniff input")
	}

	if !isText(head[:n]) {
		return nil, 0, ErrBinary
	}

	points, err := Parse(parser)
	if err != nil {
		return nil, 0, errors.Wrap(err, "parse points")
	}

	return points, cache.Size(), nil
}

// ReadFile reads the points from the file at path.
func ReadFile(ctx context.Context, path string) ([]r3.Vector, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open point file")
	}

	defer func() { _ = fp.Close() }()

	points, _, err := Read(ctx, fp)
	if err != nil {
		return nil, errors.Wrapf(err, "read %q", path)
	}

	return points, nil
}

// ReadFS reads the points from the file name in fsys.
func ReadFS(ctx context.Context, fsys fs.FS, name string) ([]r3.Vector, error) {
	fp, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open point file")
	}

	defer func() { _ = fp.Close() }()

	points, _, err := Read(ctx, fp)
	if err != nil {
		return nil, errors.Wrapf(err, "read %q", name)
	}

	return points, nil
}

func isText(head []byte) bool {
	if len(head) == 0 {
		return true
	}

	return strings.HasPrefix(http.DetectContentType(head), "text/plain")
}
