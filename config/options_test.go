package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haskell-ci/setup-haskell/catalog"
	"github.com/haskell-ci/setup-haskell/config"
	"github.com/haskell-ci/setup-haskell/errors"
	"github.com/haskell-ci/setup-haskell/tool"
)

var testCatalog = catalog.Catalog{
	GHC:   catalog.Entry{Version: "8.8.3", Supported: []string{"8.8.3", "8.6.5"}},
	Cabal: catalog.Entry{Version: "3.0.0.0", Supported: []string{"3.0.0.0", "2.4.1.0"}},
	Stack: catalog.Entry{Version: "latest", Supported: []string{"2.1.3", "1.9.3"}},
}

func TestResolveDefaults(t *testing.T) {
	opts, err := config.Resolve(config.Request{}, testCatalog)
	require.NoError(t, err)

	assert.Equal(t, config.Program{Enable: true, Exact: "8.8.3", Resolved: "8.8.3"}, opts.GHC)
	assert.Equal(t, config.Program{Enable: true, Exact: "3.0.0.0", Resolved: "3.0.0.0"}, opts.Cabal)
	assert.False(t, opts.Stack.Enable)
	assert.Equal(t, []tool.Tool{tool.GHC, tool.Cabal}, opts.Enabled())
}

func TestResolvePrefixes(t *testing.T) {
	opts, err := config.Resolve(config.Request{
		GHCVersion:   "8.6",
		CabalVersion: "2.4",
		StackVersion: "latest",
	}, testCatalog)
	require.NoError(t, err)

	assert.Equal(t, "8.6.5", opts.GHC.Resolved)
	assert.Equal(t, "2.4.1.0", opts.Cabal.Resolved)
	assert.Equal(t, "2.1.3", opts.Stack.Resolved)
	assert.Equal(t, []tool.Tool{tool.GHC, tool.Cabal, tool.Stack}, opts.Enabled())
}

func TestResolveStackNoGlobal(t *testing.T) {
	opts, err := config.Resolve(config.Request{
		GHCVersion:    "8.6",
		StackVersion:  "1.9",
		StackNoGlobal: true,
		StackSetupGHC: true,
	}, testCatalog)
	require.NoError(t, err)

	assert.Equal(t, []tool.Tool{tool.Stack}, opts.Enabled())
	assert.Equal(t, "1.9.3", opts.Stack.Resolved)
	assert.Equal(t, "8.6.5", opts.GHC.Resolved, "stack setup still needs the GHC version")
	assert.True(t, opts.StackSetup)
}

func TestResolveRequiresStackVersion(t *testing.T) {
	_, err := config.Resolve(config.Request{StackNoGlobal: true}, testCatalog)
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "stack-no-global")

	_, err = config.Resolve(config.Request{StackSetupGHC: true}, testCatalog)
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "stack-setup-ghc")
}

func TestResolveReportsAllProblems(t *testing.T) {
	_, err := config.Resolve(config.Request{StackNoGlobal: true, StackSetupGHC: true}, testCatalog)

	var e *errors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errors.User, e.Type)
	assert.Contains(t, e.Message, "stack-no-global")
	assert.Contains(t, e.Message, "stack-setup-ghc")
}

func TestResolveEmptyStackCatalog(t *testing.T) {
	c := testCatalog
	c.Stack.Supported = nil
	_, err := config.Resolve(config.Request{StackVersion: "latest"}, c)
	assert.ErrorIs(t, err, errors.ErrEmptyCatalog)
}

func TestResolvePassesUnknownVersionsThrough(t *testing.T) {
	opts, err := config.Resolve(config.Request{CabalVersion: "99.99.99"}, testCatalog)
	require.NoError(t, err)
	assert.Equal(t, "99.99.99", opts.Cabal.Resolved)
}
