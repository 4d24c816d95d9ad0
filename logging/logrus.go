package logging

import (
	"github.com/sirupsen/logrus"
)

// Logrus forwards messages to a logrus.FieldLogger.
type Logrus struct {
	l logrus.FieldLogger
}

// NewLogrus wraps l. If l is nil, the logrus standard logger is used.
func NewLogrus(l logrus.FieldLogger) *Logrus {
	if l == nil { l = logrus.StandardLogger() }
	return &Logrus{ l: l }
}

func (lg *Logrus) Error(msg string)   { lg.l.Error(msg) }
func (lg *Logrus) Warning(msg string) { lg.l.Warn(msg) }
func (lg *Logrus) Info(msg string)    { lg.l.Info(msg) }
func (lg *Logrus) Debug(msg string)   { lg.l.Debug(msg) }
