package exec

import (
	"errors"
	"strings"

	"github.com/apex/log"
)

// ErrNoCandidate is returned when no candidate command resolves.
var ErrNoCandidate = errors.New("could not resolve command")

// A WhichResolver takes a candidate command and returns whether to choose it.
type WhichResolver func(cmd string) (output string, ok bool, err error)

// WhichWithResolver returns the first candidate that resolve accepts.
func WhichWithResolver(cmds []string, resolve WhichResolver) (string, string, error) {
	for _, cmd := range cmds {
		output, ok, err := resolve(cmd)
		if ok {
			return cmd, output, nil
		}
		log.WithError(err).WithFields(log.Fields{
			"cmd":    cmd,
			"output": output,
		}).Debug("candidate command did not resolve")
	}
	return "", "", ErrNoCandidate
}

// WhichVersion returns the first candidate whose `<cmd> <argv...>` output,
// trimmed, equals version.
func WhichVersion(r Runner, version string, argv []string, cmds ...string) (string, error) {
	cmd, _, err := WhichWithResolver(cmds, func(cmd string) (string, bool, error) {
		stdout, stderr, err := r.Run(Cmd{Name: cmd, Argv: argv})
		if err != nil {
			return stderr, false, err
		}
		out := strings.TrimSpace(stdout)
		return out, out == version, nil
	})
	return cmd, err
}
