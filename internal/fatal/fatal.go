// Package fatal is the assertion primitive for programmer errors that must
// end the process: a short diagnostic goes to stderr and the process exits 1.
//
// Tests swap the exit hook with SetExitFunc so that fatal paths can be
// observed without killing the test binary.
package fatal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/joshuapare/isolate/internal/logger"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

var (
	mu       sync.Mutex
	exitFunc = os.Exit
	output   io.Writer = os.Stderr
)

// SetExitFunc replaces the function called after a failed assertion and
// returns a func that restores the previous one.
func SetExitFunc(fn func(code int)) (restore func()) {
	mu.Lock()
	prev := exitFunc
	exitFunc = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		exitFunc = prev
		mu.Unlock()
	}
}

// SetOutput redirects assertion diagnostics. It returns a restore func.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	prev := output
	output = w
	mu.Unlock()
	return func() {
		mu.Lock()
		output = prev
		mu.Unlock()
	}
}

// Check aborts with the formatted message when cond is false.
func Check(cond bool, format string, args ...any) {
	if cond {
		return
	}
	abort(2, format, args...)
}

// Abortf unconditionally aborts with the formatted message.
func Abortf(format string, args ...any) {
	abort(2, format, args...)
}

func abort(skip int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	file, line := "???", 0
	if _, f, l, ok := runtime.Caller(skip); ok {
		file, line = filepath.Base(f), l
	}

	logger.Error("assertion failed", "file", file, "line", line, "msg", msg)

	mu.Lock()
	w, exit := output, exitFunc
	mu.Unlock()

	fmt.Fprintf(w, "%s[ASSERTION]: %s:%d:%s %s\n", colorRed, file, line, colorReset, msg)
	exit(1)
}
