package rdf

import (
	"io"

	"github.com/charmbracelet/log"
)

// FormatNQuads requests that Normalize return concatenated, sorted N-Quads
// text instead of a parsed Dataset.
const FormatNQuads = "application/n-quads"

// Options configures a Normalize call. The zero value is not valid on its
// own; use DefaultOptions and apply Option functions to it.
type Options struct {
	format string
	codec  NQuadCodec
	logger *log.Logger
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the options Normalize uses when no Option is
// supplied: dataset output, the native codec, and a logger with output
// discarded.
func DefaultOptions() *Options {
	return &Options{
		codec:  NativeCodec(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithFormat requests output format. The only recognized non-empty value is
// FormatNQuads; any other non-empty value causes Normalize to fail with an
// UnknownFormatError. An empty string (the default) requests dataset output.
func WithFormat(format string) Option {
	return func(o *Options) { o.format = format }
}

// WithCodec overrides the NQuadCodec Normalize uses to emit and parse
// N-Quads text. Defaults to NativeCodec.
func WithCodec(codec NQuadCodec) Option {
	return func(o *Options) { o.codec = codec }
}

// WithLogger overrides the logger Normalize uses for diagnostic tracing of
// phase transitions. Logging never affects Normalize's return value.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

func buildOptions(opts []Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
