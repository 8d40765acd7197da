// Package version reports the build of this binary. The variables are set
// with -ldflags at release time.
package version

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver"
)

var (
	BuildType string // "release" or "development"
	Version   string // Release tag, e.g. v1.2.3.
	Commit    string
)

// ErrUnreleased is returned by Semver for binaries not built from a tag.
var ErrUnreleased = errors.New("binary was not built from a release tag")

// Released is true for tagged release builds.
func Released() bool {
	return BuildType == "release" && Version != ""
}

func String() string {
	return fmt.Sprintf("%s (revision %s, %s)", Short(), Commit, runtime.Version())
}

// Short is the release tag, or the commit for other builds.
func Short() string {
	if Released() {
		return Version
	}
	if Commit != "" {
		return Commit
	}
	return "dev"
}

// UserAgent identifies this program in HTTP requests.
func UserAgent() string {
	return "setup-haskell/" + Short()
}

func Semver() (semver.Version, error) {
	if !Released() {
		return semver.Version{}, ErrUnreleased
	}
	return semver.Parse(strings.TrimPrefix(Version, "v"))
}
