package dump

import (
	"io"

	"github.com/indigo-web/forkhttp/http"
	"github.com/indigo-web/forkhttp/http/status"
	json "github.com/json-iterator/go"
)

// Request is a printable summary of a parsed request.
type Request struct {
	Method        string      `json:"method"`
	Path          string      `json:"path"`
	Proto         string      `json:"proto"`
	Headers       [][2]string `json:"headers"`
	ContentLength uint64      `json:"content_length"`
	BodySize      uint64      `json:"body_size"`
	Chunks        int         `json:"chunks"`
	Body          string      `json:"body,omitempty"`
	Error         *Error      `json:"error,omitempty"`
}

type Error struct {
	Kind    string `json:"kind"`
	Code    uint16 `json:"code"`
	Message string `json:"message"`
}

// NewError describes err. I/O errors have the unknown kind.
func NewError(err error) *Error {
	return &Error{
		Kind:    status.KindOf(err).String(),
		Code:    uint16(status.CodeOf(err)),
		Message: err.Error(),
	}
}

// Collect drains the request body, counting its pieces. If keepBody is set, the body is
// kept as is. A body error is recorded in the dump instead of aborting it, so whatever
// was received is still shown.
func Collect(request *http.Request, keepBody bool) Request {
	dump := Request{
		Method:        request.Method,
		Path:          request.Path,
		Proto:         request.Proto.String(),
		Headers:       make([][2]string, 0, request.Headers.Len()),
		ContentLength: request.ContentLength,
	}

	for _, header := range request.Headers.Expose() {
		dump.Headers = append(dump.Headers, [2]string{header.Key, header.Value})
	}

	if request.Body == nil {
		return dump
	}

	var body []byte

	err := request.Body.Callback(func(piece []byte) error {
		dump.Chunks++
		dump.BodySize += uint64(len(piece))
		if keepBody {
			body = append(body, piece...)
		}

		return nil
	})
	if err != nil {
		dump.Error = NewError(err)
	}

	dump.Body = string(body)

	return dump
}

// Write encodes the dump as a single line of JSON.
func Write(w io.Writer, dump Request) error {
	stream := json.ConfigDefault.BorrowStream(w)
	stream.WriteVal(dump)
	stream.WriteRaw("\n")
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return err
}
