package app

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes plain lines, one per call.
type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// ConsoleLogger is FileLogger with colored levels when w is a terminal.
type ConsoleLogger struct {
	mu  sync.Mutex
	out *termenv.Output
}

func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: termenv.NewOutput(w)}
}

func (l *ConsoleLogger) Infof(component string, format string, args ...interface{}) {
	l.write(l.out.String("INFO").Foreground(termenv.ANSIGreen).String(), component, format, args...)
}

func (l *ConsoleLogger) Errorf(component string, format string, args ...interface{}) {
	l.write(l.out.String("ERROR").Foreground(termenv.ANSIRed).Bold().String(), component, format, args...)
}

func (l *ConsoleLogger) write(level, component, format string, args ...interface{}) {
	timestamp := l.out.String(time.Now().Format(time.RFC3339)).Faint().String()
	msg := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
