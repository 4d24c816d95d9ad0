package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWriterPrefixes(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.Error("bad axis")
	w.Warning("downgraded")
	w.Info("clamped")

	out := buf.String()
	assert.Contains(t, out, "[ERROR] bad axis")
	assert.Contains(t, out, "[WARNING] downgraded")
	assert.Contains(t, out, "[INFO] clamped")
}

func TestWriterDebugMode(t *testing.T) {
	defer func(m Flag) { Mode = m }(Mode)

	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	Mode = Nil
	w.Debug("hidden")
	assert.Equal(t, "", buf.String())

	Mode = Debug
	w.Debug("shown")
	assert.True(t, strings.Contains(buf.String(), "[DEBUG] shown"))
}

func TestLogrus(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{ DisableTimestamp: true })

	lg := NewLogrus(l)
	lg.Error("e")
	lg.Warning("w")
	lg.Info("i")
	lg.Debug("d")

	out := buf.String()
	assert.Contains(t, out, "level=error msg=e")
	assert.Contains(t, out, "level=warning msg=w")
	assert.Contains(t, out, "level=info msg=i")
	assert.Contains(t, out, "level=debug msg=d")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Error("x")
		Discard.Warning("x")
		Discard.Info("x")
		Discard.Debug("x")
	})
}
