// Package actions talks to the GitHub Actions runner that invokes this
// program: it reads step inputs, publishes step outputs, extends the PATH of
// later steps, and groups log output.
package actions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/files"
)

// Runner is a handle to the surrounding CI process.
type Runner struct {
	Getenv func(string) string
	Setenv func(string, string) error
	Out    io.Writer // Workflow commands are written here.

	inputs map[string]string
}

// FromEnv returns a Runner backed by the real process environment.
func FromEnv() *Runner {
	return &Runner{
		Getenv: os.Getenv,
		Setenv: os.Setenv,
		Out:    os.Stdout,
	}
}

// Input returns the value of a step input, or "" if it was not given.
func (r *Runner) Input(name string) string {
	if v, ok := r.inputs[name]; ok {
		return strings.TrimSpace(v)
	}
	key := "INPUT_" + strings.ToUpper(strings.Replace(name, " ", "_", -1))
	return strings.TrimSpace(r.Getenv(key))
}

// LoadInputs reads step inputs from a dotenv file, for running outside a
// workflow. Keys are input names written with underscores, optionally with
// the INPUT_ prefix (`ghc_version=8.6` or `INPUT_GHC_VERSION=8.6`). Values in
// the file take precedence over the environment.
func (r *Runner) LoadInputs(filename string) error {
	vars, err := godotenv.Read(filename)
	if err != nil {
		return errors.Wrapf(err, "could not read inputs file %s", filename)
	}
	if r.inputs == nil {
		r.inputs = make(map[string]string)
	}
	for k, v := range vars {
		name := strings.ToLower(strings.TrimPrefix(k, "INPUT_"))
		r.inputs[strings.Replace(name, "_", "-", -1)] = v
	}
	return nil
}

// DecodeInputs reads the named inputs into v, which must be a pointer to a
// struct with `mapstructure` tags matching the input names. Inputs that were
// not given are left out so that their fields keep their zero value.
func (r *Runner) DecodeInputs(v interface{}, names ...string) error {
	raw := make(map[string]interface{})
	for _, name := range names {
		if value := r.Input(name); value != "" {
			raw[name] = value
		}
	}
	log.WithField("inputs", raw).Debug("decoding step inputs")
	return mapstructure.Decode(raw, v)
}

// AddPath prepends dir to PATH for this process and for every later step.
func (r *Runner) AddPath(dir string) error {
	if file := r.Getenv("GITHUB_PATH"); file != "" {
		if err := files.Append(file, dir+"\n"); err != nil {
			return errors.Wrap(err, "could not update GITHUB_PATH")
		}
	} else {
		r.command("add-path", nil, dir)
	}

	path := dir
	if current := r.Getenv("PATH"); current != "" {
		path = dir + string(filepath.ListSeparator) + current
	}
	if err := r.Setenv("PATH", path); err != nil {
		return err
	}
	log.WithField("dir", dir).Debug("added to PATH")
	return nil
}

// SetOutput publishes a step output.
func (r *Runner) SetOutput(name, value string) error {
	if file := r.Getenv("GITHUB_OUTPUT"); file != "" {
		if err := files.Append(file, name+"="+value+"\n"); err != nil {
			return errors.Wrap(err, "could not update GITHUB_OUTPUT")
		}
		return nil
	}
	r.command("set-output", map[string]string{"name": name}, value)
	return nil
}

// Group folds all log output produced by fn under a collapsible heading.
func (r *Runner) Group(name string, fn func() error) error {
	r.command("group", nil, name)
	defer r.command("endgroup", nil, "")
	return fn()
}

func (r *Runner) command(name string, props map[string]string, message string) {
	cmd := "::" + name
	if len(props) > 0 {
		var kv []string
		for k, v := range props {
			kv = append(kv, k+"="+escapeProperty(v))
		}
		cmd += " " + strings.Join(kv, ",")
	}
	fmt.Fprintln(r.Out, cmd+"::"+EscapeData(message))
}

// EscapeData encodes a workflow command message.
func EscapeData(s string) string {
	s = strings.Replace(s, "%", "%25", -1)
	s = strings.Replace(s, "\r", "%0D", -1)
	return strings.Replace(s, "\n", "%0A", -1)
}

func escapeProperty(s string) string {
	s = EscapeData(s)
	s = strings.Replace(s, ":", "%3A", -1)
	return strings.Replace(s, ",", "%2C", -1)
}
