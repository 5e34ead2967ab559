package http1

import (
	"github.com/indigo-web/forkhttp/config"
	"github.com/indigo-web/forkhttp/http"
	"github.com/indigo-web/forkhttp/http/headers"
	"github.com/indigo-web/forkhttp/http/status"
	"github.com/indigo-web/forkhttp/transport"
)

// Parser consumes exactly one request from the reader. There are no states to resume: the
// head is read line by line, and the body is left to the caller in the form of a lazy
// http.Body. Any error aborts the parsing, and the parser must not be used again anyway.
type Parser struct {
	reader   transport.Reader
	lines    *LineBuffer
	cfg      *config.Config
	consumed bool
}

func NewParser(reader transport.Reader, cfg *config.Config) *Parser {
	return &Parser{
		reader: reader,
		lines:  NewLineBuffer(reader, cfg.NET.ReadBufferSize, cfg.Headers.MaxLineLength),
		cfg:    cfg,
	}
}

func (p *Parser) Parse() (*http.Request, error) {
	if p.consumed {
		return nil, status.ErrParserConsumed
	}

	p.consumed = true

	line, err := p.lines.NextLine()
	if err != nil {
		return nil, err
	}

	request := http.NewRequest(headers.NewPrealloc(p.cfg.Headers.Number.Default))
	request.Method, request.Path, request.Proto, err = ParseRequestLine(line)
	if err != nil {
		return nil, err
	}

	if err = ParseHeaders(p.lines, request.Headers, p.cfg.Headers.Number.Maximal); err != nil {
		return nil, err
	}

	length, found, err := ContentLength(request.Headers)
	if err != nil {
		return nil, err
	}

	if !found || length == 0 {
		return request, nil
	}

	if length > p.cfg.Body.MaxSize {
		return nil, status.ErrBodyTooLarge
	}

	request.ContentLength = length
	request.Body = NewBody(p.reader, p.lines.TakeRemainder(), length, p.cfg.Body.ChunkSize)

	return request, nil
}
