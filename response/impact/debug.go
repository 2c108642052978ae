package impact

import (
	"io"
	"log"
)

// logs holds the per-plane diagnostic streams.
type logs struct {
	ops  *log.Logger
	diag *log.Logger
}

func newLogs(ops, diag io.Writer) logs {
	return logs{
		ops:  newLogger("[impact] ", ops),
		diag: newLogger("[impact] ", diag),
	}
}

func newLogger(prefix string, w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}

// opsf logs to the ops stream (lookups outside the plane).
func (l logs) opsf(format string, args ...any) {
	if l.ops != nil {
		l.ops.Printf(format, args...)
	}
}

// diagf logs to the diag stream (construction summaries).
func (l logs) diagf(format string, args ...any) {
	if l.diag != nil {
		l.diag.Printf(format, args...)
	}
}
