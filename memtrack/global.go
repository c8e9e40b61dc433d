package memtrack

import (
	"io"
	"os"
)

// Default is the process-wide tracker used by the package-level functions.
var Default = New()

// --- Package-level API (delegates to Default) ---

// Alloc records an allocation on the Default tracker.
func Alloc(size int, origin string) Handle {
	return Default.Alloc(size, origin)
}

// Free releases a block on the Default tracker.
func Free(h Handle) error {
	return Default.Free(h)
}

// Outstanding returns the number of live blocks on the Default tracker.
func Outstanding() int {
	return Default.Outstanding()
}

// Alert writes the Default tracker's unfreed-memory report to stdout.
// Call it at the end of the program.
func Alert() int {
	return Default.Report(os.Stdout)
}

// ReportTo writes the Default tracker's report to w.
func ReportTo(w io.Writer) int {
	return Default.Report(w)
}
