package transport

import (
	"io"
	"net"
	"time"
)

// Reader is the only thing the parser needs from a connection: a blocking read of up to
// maxBytes bytes. io.EOF is returned on an orderly close, any other error is a transport
// failure. A read may return fewer bytes than requested, including none. Data is returned
// only together with a nil error.
//
// The returned slice is owned by the Reader and is valid until the next call.
type Reader interface {
	Read(maxBytes int) ([]byte, error)
}

type reader struct {
	src     io.Reader
	conn    net.Conn
	buff    []byte
	timeout time.Duration
	pending error
}

// NewConnReader returns a reader over the connection. If timeout is positive, each read is
// preceded by setting a read deadline of now+timeout. buff is the read buffer and limits
// the size of a single read.
func NewConnReader(conn net.Conn, timeout time.Duration, buff []byte) Reader {
	return &reader{
		src:     conn,
		conn:    conn,
		buff:    buff,
		timeout: timeout,
	}
}

// NewStreamReader returns a reader over an arbitrary stream, e.g. a pipe or stdin. No
// deadlines are applied.
func NewStreamReader(src io.Reader, buff []byte) Reader {
	return &reader{
		src:  src,
		buff: buff,
	}
}

func (r *reader) Read(maxBytes int) ([]byte, error) {
	if r.pending != nil {
		return nil, r.pending
	}

	if maxBytes > len(r.buff) {
		maxBytes = len(r.buff)
	}

	if r.conn != nil && r.timeout > 0 {
		if err := r.conn.SetReadDeadline(time.Now().Add(r.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := r.src.Read(r.buff[:maxBytes])
	if err != nil && n > 0 {
		// io.Reader is allowed to return data together with an error. Deliver the data
		// first and report the error on the next call
		r.pending = err
		err = nil
	}

	return r.buff[:n], err
}
