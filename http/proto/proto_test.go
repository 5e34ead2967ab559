package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("known versions", func(t *testing.T) {
		v, ok := Parse("HTTP/1.1")
		require.True(t, ok)
		require.Equal(t, HTTP11, v)
		require.True(t, v.Supported())

		v, ok = Parse("HTTP/1.0")
		require.True(t, ok)
		require.Equal(t, HTTP10, v)
		require.True(t, v.Supported())
	})

	t.Run("multi-digit", func(t *testing.T) {
		v, ok := Parse("HTTP/10.25")
		require.True(t, ok)
		require.Equal(t, Version{Major: 10, Minor: 25}, v)
		require.False(t, v.Supported())
	})

	t.Run("syntactically valid but unsupported", func(t *testing.T) {
		for _, token := range []string{"HTTP/5.0", "HTTP/2.0", "HTTP/0.9"} {
			v, ok := Parse(token)
			require.True(t, ok, token)
			require.False(t, v.Supported(), token)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, token := range []string{
			"", "HTTP", "HTTP/", "HTTP/1", "HTTP/1.", "HTTP/.1", "http/1.1", "HTTPS/1.1",
			"HTTP/1.1.1", "HTTP/+1.1", "HTTP/1.-1", "HTTP/256.0", "HTTP/1.1000", "HTTP/a.b",
		} {
			_, ok := Parse(token)
			require.False(t, ok, token)
		}
	})
}

func TestVersion_String(t *testing.T) {
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Equal(t, "HTTP/1.0", HTTP10.String())
	require.Equal(t, "HTTP/3.7", Version{Major: 3, Minor: 7}.String())
	require.Empty(t, Unknown.String())
}
