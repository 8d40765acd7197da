package env

import (
	"strings"

	"github.com/pkg/errors"
)

// OS is a platform that a CI runner can execute on.
type OS int

const (
	UnknownOS OS = iota
	Linux
	Darwin
	Windows
)

var ErrUnknownOS = errors.New("unknown operating system")

// ParseOS accepts both Go (GOOS) and Node (process.platform) spellings.
func ParseOS(key string) (OS, error) {
	switch strings.ToLower(key) {
	case "linux":
		return Linux, nil
	case "darwin", "macos", "osx":
		return Darwin, nil
	case "windows", "win32":
		return Windows, nil
	}
	return UnknownOS, errors.Wrapf(ErrUnknownOS, "%q", key)
}

func (o OS) String() string {
	switch o {
	case Linux:
		return "linux"
	case Darwin:
		return "darwin"
	case Windows:
		return "windows"
	}
	return "unknown"
}

// ExeSuffix is appended to executable names on this platform.
func (o OS) ExeSuffix() string {
	if o == Windows {
		return ".exe"
	}
	return ""
}
