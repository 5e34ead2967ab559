package status

type Code uint16

// Only the codes the parser may ever report. The response layer is free to map them
// onto its own set.
const (
	BadRequest              Code = 400 // RFC 9110, 15.5.1
	RequestEntityTooLarge   Code = 413 // RFC 9110, 15.5.14
	HeaderFieldsTooLarge    Code = 431 // RFC 6585, 5
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// Text returns the reason phrase for the code, or an empty string if it's unknown.
func Text(code Code) string {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case HeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}
