package config

import (
	"time"
)

type (
	HeadersNumber struct {
		Default, Maximal int
	}
)

type (
	Headers struct {
		// MaxLineLength limits every single line of the head, including the request line. A line
		// exceeding it without a CRLF is considered malformed.
		MaxLineLength int
		// Number is responsible for the headers storage size.
		// Default value is an initial capacity of the headers storage.
		// Maximal value is maximum number of headers allowed to be presented
		Number HeadersNumber
	}

	Body struct {
		// ChunkSize is the maximal length of a single piece of body returned at once.
		ChunkSize int
		// MaxSize describes the maximal Content-Length value, that can be accepted. Requests
		// declaring more are rejected before any body byte is read.
		// In order to disable the setting, use the math.MaxUint64 value.
		MaxSize uint64
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket while the head of the request is being parsed
		ReadBufferSize int
		// ReadTimeout is the deadline applied before every read from a connection. If no
		// data was received in this period of time, the read fails.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}
)

// Config holds settings used across the parser, mainly restrictions and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			// 8kb is what most of the web-entities allow for a single line
			MaxLineLength: 8 * 1024,
			Number: HeadersNumber{
				Default: 10,
				Maximal: 100,
			},
		},
		Body: Body{
			ChunkSize: 8192,
			MaxSize:   512 * 1024 * 1024, // 512 megabytes
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
