package http1

import (
	"errors"
	"io"

	"github.com/indigo-web/forkhttp/http"
	"github.com/indigo-web/forkhttp/http/status"
	"github.com/indigo-web/forkhttp/internal/stash"
	"github.com/indigo-web/forkhttp/transport"
	"github.com/indigo-web/utils/uf"
)

const (
	DefaultChunkSize = 8192
	// bytesPrealloc limits the amount of memory Bytes() allocates in advance, as the
	// Content-Length is a claim of the client and not the amount of data actually received
	bytesPrealloc = 64 * 1024
)

var _ http.Body = new(Body)

// Body delivers exactly Content-Length bytes, piece by piece. The bytes which were read
// along with the headers are served first, then the reader is asked for at most chunkSize
// bytes per call.
type Body struct {
	*stash.Reader
	reader    transport.Reader
	leftover  []byte
	remaining uint64
	chunkSize int
	err       error
}

func NewBody(reader transport.Reader, leftover []byte, contentLength uint64, chunkSize int) *Body {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	body := &Body{
		reader:    reader,
		leftover:  leftover,
		remaining: contentLength,
		chunkSize: chunkSize,
	}
	body.Reader = stash.New(body)

	return body
}

// Retrieve returns the next piece of the body. When the body is over, io.EOF is returned.
// If the stream closes earlier, status.ErrTruncatedBody is returned instead. Errors are
// sticky: once failed, the body keeps failing with the same error.
func (b *Body) Retrieve() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.remaining == 0 {
		return nil, io.EOF
	}

	limit := b.limit()

	if len(b.leftover) > 0 {
		n := len(b.leftover)
		if n > limit {
			n = limit
		}

		piece := b.leftover[:n]
		b.leftover = b.leftover[n:]
		b.remaining -= uint64(n)

		return piece, nil
	}

	for {
		data, err := b.reader.Read(limit)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = status.ErrTruncatedBody
			}

			b.err = err
			return nil, err
		}

		if len(data) == 0 {
			continue
		}

		if len(data) > limit {
			data = data[:limit]
		}

		b.remaining -= uint64(len(data))

		return data, nil
	}
}

// Remaining returns the number of bytes not delivered yet.
func (b *Body) Remaining() uint64 {
	return b.remaining
}

func (b *Body) Bytes() ([]byte, error) {
	prealloc := b.remaining
	if prealloc > bytesPrealloc {
		prealloc = bytesPrealloc
	}

	full := make([]byte, 0, prealloc)

	for {
		data, err := b.Retrieve()
		full = append(full, data...)
		switch err {
		case nil:
		case io.EOF:
			return full, nil
		default:
			return nil, err
		}
	}
}

func (b *Body) String() (string, error) {
	data, err := b.Bytes()

	return uf.B2S(data), err
}

func (b *Body) Callback(cb func([]byte) error) error {
	for {
		data, err := b.Retrieve()
		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}

		if err = cb(data); err != nil {
			return err
		}
	}
}

func (b *Body) Discard() (err error) {
	for err == nil {
		_, err = b.Retrieve()
	}

	if err == io.EOF {
		err = nil
	}

	return err
}

func (b *Body) limit() int {
	if b.remaining < uint64(b.chunkSize) {
		return int(b.remaining)
	}

	return b.chunkSize
}
