package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haskell-ci/setup-haskell/env"
)

func TestParseOS(t *testing.T) {
	cases := map[string]env.OS{
		"linux":   env.Linux,
		"darwin":  env.Darwin,
		"macOS":   env.Darwin,
		"win32":   env.Windows,
		"windows": env.Windows,
	}
	for key, want := range cases {
		got, err := env.ParseOS(key)
		assert.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err := env.ParseOS("plan9")
	assert.ErrorIs(t, err, env.ErrUnknownOS)
}

func TestExecutable(t *testing.T) {
	assert.Equal(t, "ghc.exe", env.Context{OS: env.Windows}.Executable("ghc"))
	assert.Equal(t, "ghc", env.Context{OS: env.Linux}.Executable("ghc"))
}
