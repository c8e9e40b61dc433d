package hmap

import (
	"bytes"
	"testing"

	"github.com/joshuapare/isolate/internal/fatal"
)

type fatalExit struct{ code int }

// expectFatal runs fn and reports the assertion diagnostic it produced.
// It fails the test when fn returns without asserting.
func expectFatal(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	restoreOut := fatal.SetOutput(&buf)
	restoreExit := fatal.SetExitFunc(func(code int) { panic(fatalExit{code}) })
	defer restoreOut()
	defer restoreExit()

	aborted := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(fatalExit); !ok {
					panic(r)
				}
				aborted = true
			}
		}()
		fn()
	}()

	if !aborted {
		t.Fatalf("expected fatal assertion, function returned normally")
	}
	return buf.String()
}
