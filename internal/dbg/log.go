package dbg

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/logrusorgru/aurora"
)

// Debug logging is off unless Enabled is set. It goes to Output, which is
// stderr unless replaced.
var (
	Enabled bool
	Output  io.Writer = os.Stderr

	outputLock sync.Mutex
)

type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) tag() string {
	switch l {
	case Warn:
		return aurora.Yellow("warn").String()
	case Error:
		return aurora.Red("error").String()
	default:
		return aurora.Cyan("info").String()
	}
}

// Logf writes a single tagged line when debug logging is enabled.
func Logf(level Level, format string, args ...interface{}) {
	if !Enabled {
		return
	}
	outputLock.Lock()
	defer outputLock.Unlock()
	fmt.Fprintf(Output, "[%s] %s\n", level.tag(), fmt.Sprintf(format, args...))
}
