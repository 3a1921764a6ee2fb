package internal

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestLogger_LevelFiltering(t *testing.T) {
	l := NewLogger(LogLevelWarn)

	out := captureLog(t, func() {
		l.Error("boom")
		l.Warn("careful")
		l.Info("hello")
		l.Debug("detail")
	})

	assert.Contains(t, out, "[ERROR] boom")
	assert.Contains(t, out, "[WARN] careful")
	assert.NotContains(t, out, "hello")
	assert.NotContains(t, out, "detail")
}

func TestLogger_ComponentTag(t *testing.T) {
	l := NewLogger(LogLevelInfo).WithComponent("Service")

	out := captureLog(t, func() {
		l.Info("ensino: loaded %d rows", 42)
	})

	assert.Contains(t, out, "[INFO] [Service] ensino: loaded 42 rows")
}
