package display

import (
	"os"
	"runtime"
	"time"

	"github.com/briandowns/spinner"
)

var (
	useSpinner bool
	s          = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
)

func init() {
	s.Writer = os.Stderr
}

// SetInteractive turns the progress spinner on or off.
func SetInteractive(interactive bool) {
	// Runner logs on Windows do not render ANSI control characters.
	if runtime.GOOS == "windows" {
		useSpinner = false
		return
	}
	useSpinner = interactive
}

// InProgress shows a progress spinner with a message and returns a function
// that stops it.
func InProgress(message string) func() {
	if useSpinner {
		s.Suffix = " " + message
		s.Restart()
	}
	return ClearProgress
}

// ClearProgress stops a progress spinner.
func ClearProgress() {
	if useSpinner {
		s.Stop()
	}
}
