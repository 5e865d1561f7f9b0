package testutil

import (
	"bytes"

	"github.com/rs/zerolog"
)

// NewCaptureLogger returns a logger writing JSON lines into the returned buffer
func NewCaptureLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return zerolog.New(buf).Level(zerolog.TraceLevel), buf
}
