package display

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"

	"github.com/haskell-ci/setup-haskell/actions"
)

var (
	mu     sync.Mutex
	file   *os.File
	stderr io.Writer = os.Stderr
	level            = log.InfoLevel
)

// SetDebug turns debug logging to STDERR on or off.
//
// The log file always receives debug-level entries, so the level is kept here
// rather than in `log.SetLevel`.
func SetDebug(debug bool) {
	if debug {
		level = log.DebugLevel
	} else {
		level = log.InfoLevel
	}
}

// SetFile sets the log file. By default, entries go to a temporary file.
func SetFile(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	mu.Lock()
	file = f
	mu.Unlock()
	return nil
}

// File returns the log file name.
func File() string {
	if file == nil {
		return ""
	}
	return file.Name()
}

// Handler writes human-readable entries to STDERR as workflow commands, and
// every entry as a JSON line to the log file.
func Handler(entry *log.Entry) error {
	mu.Lock()
	defer mu.Unlock()

	if entry.Level >= level {
		ClearProgress()
		fmt.Fprintln(stderr, Format(entry))
	}

	if file == nil {
		f, err := ioutil.TempFile("", "setup-haskell-log-")
		if err != nil {
			return err
		}
		file = f
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = file.Write(append(data, '\n'))
	return err
}

// Format renders an entry as a workflow command. Info entries are printed
// as plain text.
func Format(entry *log.Entry) string {
	message := entry.Message
	if len(entry.Fields) > 0 {
		names := entry.Fields.Names()
		sort.Strings(names)
		var kv []string
		for _, name := range names {
			kv = append(kv, fmt.Sprintf("%s=%v", name, entry.Fields.Get(name)))
		}
		message += " (" + strings.Join(kv, " ") + ")"
	}

	switch entry.Level {
	case log.DebugLevel:
		return "::debug::" + actions.EscapeData(message)
	case log.WarnLevel:
		return "::warning::" + actions.EscapeData(message)
	case log.ErrorLevel, log.FatalLevel:
		return "::error::" + actions.EscapeData(message)
	default:
		return message
	}
}
