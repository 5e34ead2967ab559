package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/indigo-web/forkhttp"
	"github.com/indigo-web/forkhttp/config"
	"github.com/indigo-web/forkhttp/internal/dump"
	"github.com/indigo-web/forkhttp/transport"
	"go.uber.org/zap"
)

type options struct {
	file     string
	listen   string
	keepBody bool
	debug    bool
}

func main() {
	cfg := config.Default()
	opts := parseFlags(cfg, os.Args[1:])

	logger, err := newLogger(opts.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reqdump: can't initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	d := newDumper(cfg, logger, os.Stdout, opts.keepBody)

	if len(opts.listen) > 0 {
		err = serve(d, cfg, opts.listen)
	} else {
		err = dumpFile(d, opts.file)
	}

	if err != nil {
		logger.Error("reqdump failed", zap.Error(err))
		os.Exit(1)
	}
}

func parseFlags(cfg *config.Config, args []string) options {
	var (
		opts    options
		maxBody uint64
	)

	fs := flag.NewFlagSet("reqdump", flag.ExitOnError)
	fs.StringVar(&opts.file, "file", "", "file holding a raw request, stdin if empty")
	fs.StringVar(&opts.listen, "listen", "", "address to accept connections on, e.g. :8080")
	fs.BoolVar(&opts.keepBody, "body", false, "include the body itself into the output")
	fs.BoolVar(&opts.debug, "debug", false, "human-readable debug logging")
	fs.IntVar(&cfg.Body.ChunkSize, "chunk", cfg.Body.ChunkSize, "maximal size of a body piece")
	fs.DurationVar(&cfg.NET.ReadTimeout, "timeout", cfg.NET.ReadTimeout, "read timeout per connection read")
	fs.Uint64Var(&maxBody, "max-body", cfg.Body.MaxSize, "maximal accepted Content-Length")
	fs.IntVar(&cfg.Headers.MaxLineLength, "max-line", cfg.Headers.MaxLineLength, "maximal length of a head line")
	_ = fs.Parse(args)

	cfg.Body.MaxSize = maxBody

	return opts
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// dumper parses requests and prints them. Output of concurrent connections is serialized.
type dumper struct {
	cfg      *config.Config
	logger   *zap.Logger
	mu       sync.Mutex
	out      io.Writer
	keepBody bool
}

func newDumper(cfg *config.Config, logger *zap.Logger, out io.Writer, keepBody bool) *dumper {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &dumper{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		keepBody: keepBody,
	}
}

func (d *dumper) Dump(reader transport.Reader, remote string) error {
	request, err := forkhttp.Parse(reader, d.cfg)
	if err != nil {
		e := dump.NewError(err)
		d.logger.Warn("bad request",
			zap.String("remote", remote),
			zap.String("kind", e.Kind),
			zap.Uint16("code", e.Code),
			zap.Error(err),
		)

		return err
	}

	summary := dump.Collect(request, d.keepBody)
	if summary.Error != nil {
		d.logger.Warn("body isn't fully received",
			zap.String("remote", remote),
			zap.Uint64("content_length", summary.ContentLength),
			zap.Uint64("received", summary.BodySize),
			zap.String("kind", summary.Error.Kind),
		)
	}

	d.logger.Debug("request parsed",
		zap.String("remote", remote),
		zap.String("method", summary.Method),
		zap.String("path", summary.Path),
		zap.Int("headers", len(summary.Headers)),
		zap.Int("chunks", summary.Chunks),
	)

	d.mu.Lock()
	defer d.mu.Unlock()

	return dump.Write(d.out, summary)
}

func dumpFile(d *dumper, path string) error {
	src := os.Stdin
	if len(path) > 0 {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		src = file
	}

	reader := transport.NewStreamReader(src, readBuffer(d.cfg))

	return d.Dump(reader, "-")
}

func serve(d *dumper, cfg *config.Config, addr string) error {
	tcp := transport.NewTCP()
	if err := tcp.Bind(addr); err != nil {
		return err
	}
	defer tcp.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		d.logger.Info("stopping")
		tcp.Stop()
	}()

	d.logger.Info("listening", zap.String("addr", tcp.Addr().String()))

	err := tcp.Listen(cfg.NET, func(conn net.Conn) {
		reader := transport.NewConnReader(conn, cfg.NET.ReadTimeout, readBuffer(cfg))
		// errors are already logged, the connection is going to be closed anyway
		_ = d.Dump(reader, conn.RemoteAddr().String())
	})

	tcp.Wait()

	return err
}

// readBuffer is shared by the head and the body, so it must fit a whole body chunk
func readBuffer(cfg *config.Config) []byte {
	return make([]byte, max(cfg.NET.ReadBufferSize, cfg.Body.ChunkSize))
}
