package forkhttp

import (
	"github.com/indigo-web/forkhttp/config"
	"github.com/indigo-web/forkhttp/http"
	"github.com/indigo-web/forkhttp/internal/protocol/http1"
	"github.com/indigo-web/forkhttp/transport"
)

// Parser reads a single request from a connection. Create a new one for every request.
type Parser = http1.Parser

// NewParser returns a parser over the reader. If cfg is nil, config.Default() is used.
func NewParser(reader transport.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return http1.NewParser(reader, cfg)
}

// Parse consumes one request from the reader. If the request has a body, it must be drained
// (or the connection closed) by the caller.
func Parse(reader transport.Reader, cfg *config.Config) (*http.Request, error) {
	return NewParser(reader, cfg).Parse()
}
