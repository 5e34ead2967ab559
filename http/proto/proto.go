package proto

import (
	"strconv"
	"strings"
)

// Version is the protocol version as it was stated in the request line.
type Version struct {
	Major, Minor uint8
}

var (
	Unknown = Version{}
	HTTP10  = Version{Major: 1, Minor: 0}
	HTTP11  = Version{Major: 1, Minor: 1}
)

const httpScheme = "HTTP/"

// String returns the version in its wire form, e.g. HTTP/1.1
func (v Version) String() string {
	if v == Unknown {
		return ""
	}

	return httpScheme + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}

// Supported reports whether requests of such version can be served. Only the HTTP/1.x
// family is implemented, so every other major version is rejected.
func (v Version) Supported() bool {
	return v.Major == 1
}

// Parse parses a token of form HTTP/<major>.<minor>. The boolean is false if the token
// doesn't follow this form.
func Parse(token string) (Version, bool) {
	if !strings.HasPrefix(token, httpScheme) {
		return Unknown, false
	}

	major, minor, found := strings.Cut(token[len(httpScheme):], ".")
	if !found {
		return Unknown, false
	}

	majorValue, ok := parseDigits(major)
	if !ok {
		return Unknown, false
	}

	minorValue, ok := parseDigits(minor)
	if !ok {
		return Unknown, false
	}

	return Version{Major: majorValue, Minor: minorValue}, true
}

// parseDigits is stricter than strconv.ParseUint: no signs, no empty strings.
func parseDigits(str string) (uint8, bool) {
	if len(str) == 0 || len(str) > 3 {
		return 0, false
	}

	var value uint16
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return 0, false
		}

		value = value*10 + uint16(str[i]-'0')
	}

	if value > 255 {
		return 0, false
	}

	return uint8(value), true
}
