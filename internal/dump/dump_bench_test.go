package dump

import (
	"io"
	"strings"
	"testing"

	"github.com/indigo-web/forkhttp/config"
	"github.com/indigo-web/forkhttp/internal/protocol/http1"
	"github.com/indigo-web/forkhttp/internal/tcp/dummy"
)

func BenchmarkDump(b *testing.B) {
	raw := []byte("POST /upload HTTP/1.1\r\nHost: localhost\r\nAccept: */*\r\nContent-Length: 1024\r\n\r\n" +
		strings.Repeat("a", 1024))
	reader := dummy.NewCircularReader(raw)
	cfg := config.Default()
	b.SetBytes(int64(len(raw)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		request, err := http1.NewParser(reader, cfg).Parse()
		if err != nil {
			b.Fatal(err)
		}

		if err = Write(io.Discard, Collect(request, false)); err != nil {
			b.Fatal(err)
		}
	}
}
