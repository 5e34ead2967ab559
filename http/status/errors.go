package status

import "errors"

// Kind is the class of a parsing failure. Every error produced by the parser belongs to
// exactly one kind, except I/O errors, which are passed through untouched.
type Kind uint8

const (
	Unknown Kind = iota
	UnexpectedEOF
	MalformedRequest
	UnsupportedVersion
	TruncatedBody
	EntityTooLarge
)

func (k Kind) String() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected EOF"
	case MalformedRequest:
		return "malformed request"
	case UnsupportedVersion:
		return "unsupported HTTP version"
	case TruncatedBody:
		return "truncated body"
	case EntityTooLarge:
		return "entity too large"
	default:
		return "unknown"
	}
}

type HTTPError struct {
	Message string
	Kind    Kind
	Code    Code
}

func NewError(kind Kind, code Code, message string) error {
	return HTTPError{
		Message: message,
		Kind:    kind,
		Code:    code,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// Is reports whether the target is the kind sentinel of the error, so
// errors.Is(ErrTooLongLine, ErrMalformedRequest) holds while the specific errors stay
// distinguishable from each other.
func (h HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	if !ok {
		return false
	}

	return t.Kind == h.Kind && t.Message == t.Kind.String()
}

// KindOf returns the kind of the error, or Unknown if it doesn't come from the parser.
func KindOf(err error) Kind {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Kind
	}

	return Unknown
}

// CodeOf returns the status code the error should be answered with. Errors not produced
// by the parser are considered to be BadRequest.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return BadRequest
}

// kind sentinels
var (
	ErrUnexpectedEOF      = NewError(UnexpectedEOF, BadRequest, UnexpectedEOF.String())
	ErrMalformedRequest   = NewError(MalformedRequest, BadRequest, MalformedRequest.String())
	ErrUnsupportedVersion = NewError(UnsupportedVersion, HTTPVersionNotSupported, UnsupportedVersion.String())
	ErrTruncatedBody      = NewError(TruncatedBody, BadRequest, TruncatedBody.String())
	ErrEntityTooLarge     = NewError(EntityTooLarge, RequestEntityTooLarge, EntityTooLarge.String())
)

var (
	ErrTooLongLine      = NewError(MalformedRequest, BadRequest, "line is too long")
	ErrHeaderNoColon    = NewError(MalformedRequest, BadRequest, "header line has no colon")
	ErrEmptyHeaderName  = NewError(MalformedRequest, BadRequest, "header name is empty")
	ErrBadContentLength = NewError(MalformedRequest, BadRequest, "invalid Content-Length value")
	ErrTooManyHeaders   = NewError(EntityTooLarge, HeaderFieldsTooLarge, "too many headers")
	ErrBodyTooLarge     = NewError(EntityTooLarge, RequestEntityTooLarge, "request body is too large")
)

// ErrParserConsumed is returned by a parser which has already been used once. It's a misuse
// rather than a property of the request, so it has no kind.
var ErrParserConsumed = errors.New("parser has been already used")
