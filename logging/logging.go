package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that a verbosity setting doesn't need to be
// threaded through every grid in a program.
var (
	Mode Flag = Nil
)

// Logger is the sink that grids and axes report diagnostics to. Error
// reports are always followed by the reporting operation returning an error,
// so a Logger never needs to abort anything itself.
type Logger interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Debug(msg string)
}

// Writer is a Logger which writes every message to an io.Writer with a
// severity prefix.
type Writer struct {
	l *log.Logger
}

// NewStdout returns the default Logger, which writes to standard output.
func NewStdout() *Writer { return NewWriter(os.Stdout) }

// NewWriter returns a Logger which writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{ l: log.New(w, "", log.LstdFlags) }
}

func (w *Writer) Error(msg string)   { w.l.Printf("[ERROR] %s", msg) }
func (w *Writer) Warning(msg string) { w.l.Printf("[WARNING] %s", msg) }
func (w *Writer) Info(msg string)    { w.l.Printf("[INFO] %s", msg) }

// Debug only writes when Mode is set to Debug.
func (w *Writer) Debug(msg string) {
	if Mode == Debug { w.l.Printf("[DEBUG] %s", msg) }
}

type discard struct{}

func (discard) Error(string)   {}
func (discard) Warning(string) {}
func (discard) Info(string)    {}
func (discard) Debug(string)   {}

// Discard is a Logger which drops every message.
var Discard Logger = discard{}

// MemString returns a string containing various statistics on the current
// memory usage of the program.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc >> 20, ms.Sys >> 20, ms.TotalAlloc >> 20,
	)
}
