package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// WriterLogger implements core.Logger on top of any io.Writer
type WriterLogger struct {
	w io.Writer
}

func (wl *WriterLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(wl.w, format, args...)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &WriterLogger{w: w}
}

// NewStderrLogger creates a logger that keeps stdout free for image data
func NewStderrLogger() core.Logger {
	return NewWriterLogger(os.Stderr)
}

// discardLogger drops every message
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// NewDiscardLogger creates a logger that ignores all output
func NewDiscardLogger() core.Logger {
	return discardLogger{}
}
