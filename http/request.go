package http

import (
	"github.com/indigo-web/forkhttp/http/headers"
	"github.com/indigo-web/forkhttp/http/proto"
)

// Body is a forward-only, single-pass sequence of body pieces. Each piece returned by
// Retrieve is valid until the next call. When the body is over, Retrieve returns io.EOF
// and keeps doing so.
type Body interface {
	Retrieve() ([]byte, error)
	// Read implements io.Reader over the same sequence.
	Read([]byte) (int, error)
	// Remaining is the number of bytes not delivered yet.
	Remaining() uint64
	// Bytes drains the rest of the body into a freshly allocated slice.
	Bytes() ([]byte, error)
	// String is the same as Bytes, but returns a string.
	String() (string, error)
	// Callback feeds every remaining piece to the callback, stopping on the first error.
	Callback(cb func([]byte) error) error
	// Discard drains the rest of the body without keeping it.
	Discard() error
}

// Request represents a parsed HTTP request. Everything except the body is immutable once
// the request is returned by the parser.
type Request struct {
	// Method is the first token of the request line as is. It isn't validated nor normalized.
	Method string
	// Path is the second token of the request line. No decoding is applied.
	Path string
	// Proto is the version stated in the request line.
	Proto proto.Version
	// Headers holds header pairs in arrival order, duplicates included.
	Headers *headers.Headers
	// ContentLength is the declared body length, 0 if none.
	ContentLength uint64
	// Body is nil unless the request has a non-empty Content-Length body.
	Body Body
}

func NewRequest(hdrs *headers.Headers) *Request {
	return &Request{
		Headers: hdrs,
	}
}

// HasBody tells whether there is a body to be drained
func (r *Request) HasBody() bool {
	return r.Body != nil
}
