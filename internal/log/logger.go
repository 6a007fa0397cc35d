package log

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer. A Logger may be shared by
// concurrent callers; each message is written in a single call.
type Logger struct {
	Enabled bool
	W       io.Writer

	mu sync.Mutex
}

// New returns an enabled Logger writing to w, or a disabled one when
// w is nil.
func New(w io.Writer) *Logger {
	return &Logger{Enabled: w != nil, W: w}
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false or W is nil.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	msg := fmt.Sprintf(format+"\n", args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.W, msg)
}
