package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	// Output is where Echo and Fatal write. It's a variable so tests can capture it.
	Output   io.Writer = os.Stderr
	outputMu sync.Mutex
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message without any logging formatting.
// It's safe to call from multiple goroutines.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	outputMu.Lock()
	defer outputMu.Unlock()
	_, _ = fmt.Fprintf(Output, msg, args...)
}
