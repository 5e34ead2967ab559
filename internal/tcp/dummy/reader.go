package dummy

import (
	"io"

	"github.com/indigo-web/utils/unreader"
)

// Reader returns the pieces it was initialised with one by one, respecting maxBytes, and
// io.EOF (or the error set via WithError) as soon as they are over. Pieces larger than
// maxBytes are split, so the tail is returned by the next call.
type Reader struct {
	unreader *unreader.Unreader
	data     [][]byte
	pointer  int
	err      error
	// Reads counts every call to Read, including the failing ones
	Reads int
	// Requested holds the maxBytes of every call to Read
	Requested []int
}

func NewReader(data ...[]byte) *Reader {
	return &Reader{
		unreader: new(unreader.Unreader),
		data:     data,
		err:      io.EOF,
	}
}

// NewStringReader is the same as NewReader, but gets strings instead
func NewStringReader(data ...string) *Reader {
	pieces := make([][]byte, len(data))
	for i, piece := range data {
		pieces[i] = []byte(piece)
	}

	return NewReader(pieces...)
}

// WithError sets the error returned after all the pieces are read. Defaults to io.EOF
func (r *Reader) WithError(err error) *Reader {
	r.err = err
	return r
}

func (r *Reader) Read(maxBytes int) ([]byte, error) {
	r.Reads++
	r.Requested = append(r.Requested, maxBytes)

	data, err := r.unreader.PendingOr(func() ([]byte, error) {
		if r.pointer >= len(r.data) {
			return nil, r.err
		}

		piece := r.data[r.pointer]
		r.pointer++

		return piece, nil
	})
	if err != nil {
		return nil, err
	}

	if len(data) > maxBytes {
		r.unreader.Unread(data[maxBytes:])
		data = data[:maxBytes]
	}

	return data, nil
}

// Greedy ignores maxBytes and returns every piece as a whole. Used to check, that consumers
// don't trust readers to respect the limit
type Greedy struct {
	data    [][]byte
	pointer int
}

func NewGreedy(data ...[]byte) *Greedy {
	return &Greedy{data: data}
}

func (g *Greedy) Read(int) ([]byte, error) {
	if g.pointer >= len(g.data) {
		return nil, io.EOF
	}

	piece := g.data[g.pointer]
	g.pointer++

	return piece, nil
}

// CircularReader never ends: after the last piece it starts over from the first one. Pieces
// are cut to maxBytes, the rest of the piece is dropped. Used by the benchmarks
type CircularReader struct {
	data    [][]byte
	pointer int
}

func NewCircularReader(data ...[]byte) *CircularReader {
	return &CircularReader{
		data: data,
	}
}

func (c *CircularReader) Read(maxBytes int) ([]byte, error) {
	if c.pointer >= len(c.data) {
		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	if len(piece) > maxBytes {
		piece = piece[:maxBytes]
	}

	return piece, nil
}
