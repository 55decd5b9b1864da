package util

import (
	"io"
	"log"
	"os"
)

var (
	flagEnableTrace bool = false
	tracer               = log.New(os.Stderr, "[trace] ", log.Ltime|log.Lmicroseconds)
)

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

// SetTraceOutput redirects trace lines, e.g. into a test buffer.
func SetTraceOutput(w io.Writer) {
	tracer.SetOutput(w)
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		tracer.Printf(format, v...)
	}
}
