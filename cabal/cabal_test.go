package cabal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haskell-ci/setup-haskell/cabal"
	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/exec"
	"github.com/haskell-ci/setup-haskell/files"
)

type runner struct {
	help  string
	calls []string
	fail  string
}

func (r *runner) Run(cmd exec.Cmd) (string, string, error) {
	call := strings.Join(append([]string{cmd.Name}, cmd.Argv...), " ")
	r.calls = append(r.calls, call)
	if call == r.fail {
		return "", "boom", errors.New("exit status 1")
	}
	if call == "cabal --help" {
		return r.help, "", nil
	}
	return "", "", nil
}

type outputs map[string]string

func (o outputs) SetOutput(name, value string) error {
	o[name] = value
	return nil
}

func helpText(configFile string) string {
	return "Command line interface to the Haskell Cabal infrastructure.\n\n" +
		"You can edit the cabal configuration file to set defaults:\n  " + configFile + "\n"
}

func TestConfigureLinux(t *testing.T) {
	home := t.TempDir()
	configFile := filepath.Join(home, ".cabal", "config")

	r := &runner{help: helpText(configFile)}
	out := outputs{}
	c := &cabal.Configurer{Env: env.Context{OS: env.Linux, Home: home}, Runner: r, Outputs: out}

	require.NoError(t, os.MkdirAll(filepath.Dir(configFile), 0755))
	require.NoError(t, c.Configure(true))

	contents, err := files.Read(configFile)
	require.NoError(t, err)
	assert.Equal(t, "http-transport: plain-http\n", string(contents))
	assert.Equal(t, filepath.Join(home, ".cabal", "store"), out["cabal-store"])
	assert.Equal(t, []string{
		"cabal user-config update",
		"cabal --help",
		"cabal user-config update",
		"cabal update",
	}, r.calls)
}

func TestConfigureWindowsSkipsIndexUpdate(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config")

	r := &runner{help: helpText(configFile)}
	out := outputs{}
	c := &cabal.Configurer{Env: env.Context{OS: env.Windows, Home: dir}, Runner: r, Outputs: out}
	require.NoError(t, c.Configure(false))

	contents, err := files.Read(configFile)
	require.NoError(t, err)
	assert.Equal(t, "http-transport: plain-http\nstore-dir: C:\\sr\n", string(contents))
	assert.Equal(t, cabal.WindowsStoreDir, out["cabal-store"])
	assert.NotContains(t, r.calls, "cabal update")
}

func TestConfigureFailsWhenCabalFails(t *testing.T) {
	r := &runner{fail: "cabal user-config update"}
	c := &cabal.Configurer{Env: env.Context{OS: env.Linux}, Runner: r, Outputs: outputs{}}
	err := c.Configure(true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestConfigFileMissing(t *testing.T) {
	c := &cabal.Configurer{Runner: &runner{help: "\n\n"}}
	_, err := c.ConfigFile()
	assert.Error(t, err)
}
