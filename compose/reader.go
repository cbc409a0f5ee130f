package compose

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// LineReader supplies the human's next line. Implementations return
// ErrInputClosed when no more input will arrive.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type scanReader struct {
	scanner *bufio.Scanner
}

// NewScanReader wraps a stream, typically stdin, as a LineReader. Reads
// block until a full line arrives; the context is only consulted between
// lines, so cancelling mid-read takes effect at the next prompt.
func NewScanReader(r io.Reader) LineReader {
	return &scanReader{scanner: bufio.NewScanner(r)}
}

func (r *scanReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}
	return r.scanner.Text(), nil
}
