package actions_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haskell-ci/setup-haskell/actions"
	"github.com/haskell-ci/setup-haskell/files"
)

func newRunner(vars map[string]string) (*actions.Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &actions.Runner{
		Getenv: func(k string) string { return vars[k] },
		Setenv: func(k, v string) error {
			vars[k] = v
			return nil
		},
		Out: &out,
	}, &out
}

func TestInput(t *testing.T) {
	r, _ := newRunner(map[string]string{"INPUT_GHC-VERSION": " 8.6 "})
	assert.Equal(t, "8.6", r.Input("ghc-version"))
	assert.Equal(t, "", r.Input("cabal-version"))
}

func TestLoadInputs(t *testing.T) {
	r, _ := newRunner(map[string]string{
		"INPUT_GHC-VERSION":   "8.6",
		"INPUT_CABAL-VERSION": "3.0",
	})
	path := filepath.Join(t.TempDir(), "inputs.env")
	require.NoError(t, files.Append(path, "ghc_version=8.10.1\nINPUT_STACK_VERSION=latest\n"))

	require.NoError(t, r.LoadInputs(path))
	assert.Equal(t, "8.10.1", r.Input("ghc-version"))
	assert.Equal(t, "3.0", r.Input("cabal-version"))
	assert.Equal(t, "latest", r.Input("stack-version"))

	assert.Error(t, r.LoadInputs(filepath.Join(t.TempDir(), "missing.env")))
}

func TestDecodeInputs(t *testing.T) {
	r, _ := newRunner(map[string]string{
		"INPUT_GHC-VERSION":     "8.6.5",
		"INPUT_STACK-NO-GLOBAL": "true",
	})

	var in struct {
		GHC      string `mapstructure:"ghc-version"`
		Cabal    string `mapstructure:"cabal-version"`
		NoGlobal string `mapstructure:"stack-no-global"`
	}
	require.NoError(t, r.DecodeInputs(&in, "ghc-version", "cabal-version", "stack-no-global"))
	assert.Equal(t, "8.6.5", in.GHC)
	assert.Equal(t, "", in.Cabal)
	assert.Equal(t, "true", in.NoGlobal)
}

func TestAddPath(t *testing.T) {
	pathFile := filepath.Join(t.TempDir(), "path")
	vars := map[string]string{"GITHUB_PATH": pathFile, "PATH": "/usr/bin"}
	r, _ := newRunner(vars)

	require.NoError(t, r.AddPath("/opt/ghc/8.6.5/bin"))

	assert.Equal(t, "/opt/ghc/8.6.5/bin"+string(filepath.ListSeparator)+"/usr/bin", vars["PATH"])
	contents, err := files.Read(pathFile)
	assert.NoError(t, err)
	assert.Equal(t, "/opt/ghc/8.6.5/bin\n", string(contents))
}

func TestAddPathWithoutPathFile(t *testing.T) {
	r, out := newRunner(map[string]string{})
	require.NoError(t, r.AddPath("/opt/ghc/8.6.5/bin"))
	assert.Equal(t, "::add-path::/opt/ghc/8.6.5/bin\n", out.String())
}

func TestSetOutput(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "output")
	r, _ := newRunner(map[string]string{"GITHUB_OUTPUT": outFile})
	require.NoError(t, r.SetOutput("cabal-store", `C:\sr`))

	contents, err := files.Read(outFile)
	assert.NoError(t, err)
	assert.Equal(t, "cabal-store=C:\\sr\n", string(contents))
}

func TestGroup(t *testing.T) {
	r, out := newRunner(map[string]string{})
	err := r.Group("Installing ghc version 8.6.5", func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, "::group::Installing ghc version 8.6.5\n::endgroup::\n", out.String())
}

func TestEscapeData(t *testing.T) {
	assert.Equal(t, "100%25 done%0D%0Anext", actions.EscapeData("100% done\r\nnext"))
}
