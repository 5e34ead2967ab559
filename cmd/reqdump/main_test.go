package main

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/indigo-web/forkhttp/config"
	"github.com/indigo-web/forkhttp/http/status"
	"github.com/indigo-web/forkhttp/internal/tcp/dummy"
	"github.com/indigo-web/forkhttp/transport"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseFlags(t *testing.T) {
	cfg := config.Default()
	opts := parseFlags(cfg, []string{
		"-file", "req.txt", "-body", "-chunk", "16", "-max-body", "100", "-timeout", "3s",
	})

	require.Equal(t, "req.txt", opts.file)
	require.True(t, opts.keepBody)
	require.False(t, opts.debug)
	require.Equal(t, 16, cfg.Body.ChunkSize)
	require.Equal(t, uint64(100), cfg.Body.MaxSize)
	require.Equal(t, 3*time.Second, cfg.NET.ReadTimeout)
	require.Len(t, readBuffer(cfg), cfg.NET.ReadBufferSize)

	cfg.Body.ChunkSize = cfg.NET.ReadBufferSize * 2
	require.Len(t, readBuffer(cfg), cfg.Body.ChunkSize)
}

func TestDumper(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		var out bytes.Buffer
		d := newDumper(config.Default(), zap.NewNop(), &out, true)
		r := dummy.NewStringReader("POST /x HTTP/1.1\r\nContent-Length: 2\r\n\r\nhi")
		require.NoError(t, d.Dump(r, "test"))
		require.Contains(t, out.String(), `"method":"POST"`)
		require.Contains(t, out.String(), `"body":"hi"`)
	})

	t.Run("bad request", func(t *testing.T) {
		var out bytes.Buffer
		d := newDumper(config.Default(), nil, &out, false)
		err := d.Dump(dummy.NewStringReader("GET /\r\n\r\n"), "test")
		require.ErrorIs(t, err, status.ErrMalformedRequest)
		require.Empty(t, out.String())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "request.txt")
		require.NoError(t, os.WriteFile(path, []byte("GET /file HTTP/1.0\r\nHost: localhost\r\n\r\n"), 0o600))

		var out bytes.Buffer
		d := newDumper(config.Default(), zap.NewNop(), &out, false)
		require.NoError(t, dumpFile(d, path))
		require.Contains(t, out.String(), `"path":"/file"`)
		require.Contains(t, out.String(), `"proto":"HTTP/1.0"`)
	})

	t.Run("missing file", func(t *testing.T) {
		d := newDumper(config.Default(), zap.NewNop(), new(bytes.Buffer), false)
		require.Error(t, dumpFile(d, filepath.Join(t.TempDir(), "nope")))
	})

	t.Run("connection", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()

		go func() {
			_, _ = client.Write([]byte("GET /conn HTTP/1.1\r\nX-A: b\r\n\r\n"))
			_ = client.Close()
		}()

		var out bytes.Buffer
		d := newDumper(config.Default(), zap.NewNop(), &out, false)
		reader := transport.NewConnReader(server, time.Second, make([]byte, 64))
		require.NoError(t, d.Dump(reader, server.RemoteAddr().String()))
		require.True(t, strings.HasPrefix(out.String(), `{"method":"GET","path":"/conn"`))
	})
}
