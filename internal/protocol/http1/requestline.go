package http1

import (
	"bytes"

	"github.com/indigo-web/forkhttp/http/proto"
	"github.com/indigo-web/forkhttp/http/status"
	"github.com/indigo-web/utils/uf"
)

// ParseRequestLine splits the line into method, path and protocol version. The method and
// path are copied, so the line may be safely reused afterwards.
func ParseRequestLine(line []byte) (method, path string, version proto.Version, err error) {
	tokens := bytes.FieldsFunc(line, isWhitespace)
	if len(tokens) != 3 {
		return "", "", proto.Unknown, status.ErrMalformedRequest
	}

	version, ok := proto.Parse(uf.B2S(tokens[2]))
	if !ok || !version.Supported() {
		return "", "", proto.Unknown, status.ErrUnsupportedVersion
	}

	return string(tokens[0]), string(tokens[1]), version, nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}
