package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The worker and server binaries program against Interface; keep the
// concrete slog adapter pinned to it.
var _ Interface = (*slogLogger)(nil)

func TestSlogLoggerStructuredMethods(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	log.Infow("session opened", "record_sid", "sub_1")
	log.Errorw("activation failed", "error", "boom")

	out := buf.String()
	assert.Contains(t, out, "session opened")
	assert.Contains(t, out, "record_sid=sub_1")
	assert.Contains(t, out, "activation failed")
}

func TestSlogLoggerNamedAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil))).
		Named("worker").
		With("job", "retry-activation")

	log.Infow("sweep done", "failed", 0)

	out := buf.String()
	assert.Contains(t, out, "logger=worker")
	assert.Contains(t, out, "job=retry-activation")
}
