package forkhttp

import (
	"net"
	"testing"
	"time"

	"github.com/indigo-web/forkhttp/config"
	"github.com/indigo-web/forkhttp/http/status"
	"github.com/indigo-web/forkhttp/transport"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("over a connection", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()

		go func() {
			_, _ = client.Write([]byte("PUT /data HTTP/1.1\r\nHost: localhost\r\nContent-Length: 11\r\n\r\n"))
			_, _ = client.Write([]byte("hello world"))
			_ = client.Close()
		}()

		reader := transport.NewConnReader(server, time.Second, make([]byte, 1024))
		request, err := Parse(reader, nil)
		require.NoError(t, err)
		require.Equal(t, "PUT", request.Method)
		require.Equal(t, "/data", request.Path)
		require.Equal(t, "localhost", request.Headers.Value("host"))

		body, err := request.Body.String()
		require.NoError(t, err)
		require.Equal(t, "hello world", body)
	})

	t.Run("client hangs up early", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()

		go func() {
			_, _ = client.Write([]byte("PUT /data HTTP/1.1\r\nContent-Length: 11\r\n\r\nhello"))
			_ = client.Close()
		}()

		cfg := config.Default()
		request, err := NewParser(transport.NewConnReader(server, time.Second, make([]byte, 1024)), cfg).Parse()
		require.NoError(t, err)

		_, err = request.Body.Bytes()
		require.ErrorIs(t, err, status.ErrTruncatedBody)
	})
}
