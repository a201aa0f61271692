package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Logger struct {
	out     io.Writer
	err     io.Writer
	json    bool
	quiet   bool
	verbose bool
}

type ctxKey struct{}

func DefaultLogger() Logger {
	return Logger{
		out: os.Stdout,
		err: os.Stderr,
	}
}

func NewLogger(out, err io.Writer, json, quiet, verbose bool) Logger {
	return Logger{
		out:     out,
		err:     err,
		json:    json,
		quiet:   quiet,
		verbose: verbose,
	}
}

// WithContext returns a new context with this logger associated to it.
func (l Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Ctx returns the logger associated with the given context.
// If no logger is set, a default logger on stdout/stderr is returned.
func Ctx(ctx context.Context) Logger {
	l, ok := ctx.Value(ctxKey{}).(Logger)
	if !ok {
		return DefaultLogger()
	}
	return l
}

func (l *Logger) Out(f string, args ...interface{}) {
	fmt.Fprintf(l.out, f+"\n", args...)
}

func (l *Logger) OutRaw(s string) {
	fmt.Fprintf(l.out, "%s", s)
}

func (l *Logger) Info(tag string, f string, args ...interface{}) {
	if l.quiet {
		return
	}
	print(l.err, color.New(color.FgHiGreen), tag, f, args...)
}

func (l *Logger) Debug(tag string, f string, args ...interface{}) {
	if l.verbose {
		print(l.err, color.New(color.FgGreen), tag, f, args...)
	}
}

func print(w io.Writer, tagColor *color.Color, tag, f string, args ...interface{}) {
	str := fmt.Sprintf(f, args...)
	for _, line := range strings.Split(str, "\n") {
		fmt.Fprintf(w, "%s  %s\n",
			tagColor.Sprint(tag),
			color.WhiteString(line))
	}
}

type Writer struct {
	pipe io.Writer
	tag  string
}

// InfoWriter returns an io.Writer that re-emits whatever is written to it
// as tagged log lines. Used to pipe external tool output through the log.
func (l *Logger) InfoWriter(tag string) *Writer {
	return &Writer{
		pipe: l.err,
		tag:  tag,
	}
}

func (w *Writer) Write(data []byte) (n int, err error) {
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		fmt.Fprintf(w.pipe, "%s  %s\n",
			color.HiYellowString(w.tag),
			color.HiWhiteString(line))
	}
	return len(data), nil
}
