package http1

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/indigo-web/forkhttp/http/headers"
	"github.com/indigo-web/forkhttp/http/status"
)

const whitespace = " \t"

// ParseHeaders reads header lines until an empty one, appending them in arrival order.
func ParseHeaders(lines *LineBuffer, into *headers.Headers, maxHeaders int) error {
	for {
		line, err := lines.NextLine()
		if err != nil {
			return err
		}

		if len(line) == 0 {
			return nil
		}

		if into.Len() >= maxHeaders {
			return status.ErrTooManyHeaders
		}

		key, value, err := ParseHeaderLine(line)
		if err != nil {
			return err
		}

		into.Add(key, value)
	}
}

// ParseHeaderLine splits the line by the first colon. The key is trimmed of whitespace
// from both sides, the value only from the left one.
func ParseHeaderLine(line []byte) (key, value string, err error) {
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return "", "", status.ErrHeaderNoColon
	}

	rawKey := bytes.Trim(line[:colon], whitespace)
	if len(rawKey) == 0 {
		return "", "", status.ErrEmptyHeaderName
	}

	return string(rawKey), string(bytes.TrimLeft(line[colon+1:], whitespace)), nil
}

// ContentLength looks up all the Content-Length headers. Repeated headers are fine as long
// as they agree on the value.
func ContentLength(hdrs *headers.Headers) (length uint64, found bool, err error) {
	for _, value := range hdrs.Values("Content-Length") {
		parsed, err := ParseContentLength(value)
		if err != nil {
			return 0, false, err
		}

		if found && parsed != length {
			return 0, false, status.ErrBadContentLength
		}

		length, found = parsed, true
	}

	return length, found, nil
}

// ParseContentLength parses a decimal unsigned integer. Signs and any non-digits are
// rejected, the trailing whitespace is ignored.
func ParseContentLength(value string) (uint64, error) {
	value = strings.TrimRight(value, whitespace)
	if len(value) == 0 || value[0] < '0' || value[0] > '9' {
		return 0, status.ErrBadContentLength
	}

	length, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, status.ErrBadContentLength
	}

	return length, nil
}
