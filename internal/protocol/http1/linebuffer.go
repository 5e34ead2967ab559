package http1

import (
	"bytes"
	"errors"
	"io"

	"github.com/indigo-web/forkhttp/http/status"
	"github.com/indigo-web/forkhttp/transport"
)

var crlf = []byte("\r\n")

const (
	DefaultReadSize      = 4096
	DefaultMaxLineLength = 8192
)

// LineBuffer extracts CRLF-terminated lines from the reader. Everything read past the
// terminator is kept and served first, so the bytes are never lost nor duplicated between
// the phases of parsing.
type LineBuffer struct {
	reader        transport.Reader
	data          []byte
	offset        int
	scanned       int
	readSize      int
	maxLineLength int
}

// NewLineBuffer returns a buffer reading by readSize bytes at most. Non-positive sizes are
// replaced by the defaults, as a zero read size would never make any progress.
func NewLineBuffer(reader transport.Reader, readSize, maxLineLength int) *LineBuffer {
	if readSize <= 0 {
		readSize = DefaultReadSize
	}

	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}

	return &LineBuffer{
		reader:        reader,
		data:          make([]byte, 0, readSize),
		readSize:      readSize,
		maxLineLength: maxLineLength,
	}
}

// NextLine returns the next line without its terminator. The returned slice is valid until
// the next call.
func (l *LineBuffer) NextLine() ([]byte, error) {
	for {
		pending := l.data[l.offset:]
		if i := bytes.Index(pending[l.scanned:], crlf); i != -1 {
			end := l.scanned + i
			if end > l.maxLineLength {
				return nil, status.ErrTooLongLine
			}

			l.offset += end + len(crlf)
			l.scanned = 0

			return pending[:end:end], nil
		}

		// the CR might be the last byte we've got so far, with the LF arriving with the
		// next read. So don't skip it
		l.scanned = len(pending)
		if l.scanned > 0 && pending[l.scanned-1] == '\r' {
			l.scanned--
		}

		if l.scanned > l.maxLineLength {
			return nil, status.ErrTooLongLine
		}

		if err := l.fill(); err != nil {
			return nil, err
		}
	}
}

// TakeRemainder returns all the buffered bytes not consumed as lines yet. The buffer
// forgets them, so the ownership moves to the caller.
func (l *LineBuffer) TakeRemainder() []byte {
	rest := l.data[l.offset:]
	l.data, l.offset, l.scanned = nil, 0, 0
	if len(rest) == 0 {
		return nil
	}

	return rest
}

func (l *LineBuffer) fill() error {
	if l.offset > 0 {
		n := copy(l.data, l.data[l.offset:])
		l.data = l.data[:n]
		l.offset = 0
	}

	for {
		data, err := l.reader.Read(l.readSize)
		switch {
		case errors.Is(err, io.EOF):
			return status.ErrUnexpectedEOF
		case err != nil:
			return err
		}

		if len(data) > 0 {
			l.data = append(l.data, data...)
			return nil
		}
	}
}
