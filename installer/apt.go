package installer

import (
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/tool"
)

// AptStrategy installs GHC and cabal from the Ubuntu packages that the hosted
// runners are provisioned from (/opt/<tool>/<version>).
type AptStrategy struct {
	Runner exec.Runner
}

func (*AptStrategy) Name() string { return Apt.String() }

func (*AptStrategy) Supports(t tool.Tool, os env.OS) bool {
	return os == env.Linux && (t == tool.GHC || t == tool.Cabal)
}

// Attempt runs apt-get. A missing package is an ordinary failure.
func (a *AptStrategy) Attempt(t tool.Tool, version string) error {
	pkg := AptPackage(t, version)
	_, stderr, err := a.Runner.Run(exec.Cmd{
		Name: "sudo",
		Argv: []string{"--", "apt-get", "-y", "install", pkg},
	})
	if err != nil {
		return errors.Wrapf(err, "apt-get install %s failed: %s", pkg, stderr)
	}
	return nil
}

// AptPackage returns the package name for a tool version. cabal packages are
// versioned by major.minor only.
func AptPackage(t tool.Tool, version string) string {
	if t == tool.Cabal {
		return "cabal-install-" + majorMinor(version)
	}
	return t.String() + "-" + version
}
