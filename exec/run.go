// Package exec runs external processes.
package exec

import (
	"bytes"
	"os/exec"

	"github.com/apex/log"
)

// Cmd is a single executable invocation. Arguments are passed to the process
// as-is and never through a shell. The environment is inherited.
type Cmd struct {
	Name string   // Executable name or path.
	Argv []string // Executable arguments.
}

// A Runner runs commands. Installers depend on a Runner rather than calling Run
// directly so that tests can observe and script subprocesses.
type Runner interface {
	Run(cmd Cmd) (stdout, stderr string, err error)
}

// System is the Runner that spawns real processes.
type System struct{}

// Run implements Runner.
func (System) Run(cmd Cmd) (string, string, error) {
	return Run(cmd)
}

// Run executes a `Cmd`.
func Run(cmd Cmd) (stdout, stderr string, err error) {
	log.WithFields(log.Fields{
		"name": cmd.Name,
		"argv": cmd.Argv,
	}).Debug("running command")

	var stderrBuffer bytes.Buffer
	xc := BuildExec(cmd)
	xc.Stderr = &stderrBuffer

	stdoutBuffer, err := xc.Output()
	stdout = string(stdoutBuffer)
	stderr = stderrBuffer.String()

	log.WithFields(log.Fields{
		"stdout": stdout,
		"stderr": stderr,
	}).Debug("done running")

	return stdout, stderr, err
}

// BuildExec converts a Cmd into an *exec.Cmd without starting it.
func BuildExec(cmd Cmd) *exec.Cmd {
	return exec.Command(cmd.Name, cmd.Argv...)
}
