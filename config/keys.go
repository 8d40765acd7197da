package config

import (
	"os"

	isatty "github.com/mattn/go-isatty"

	"github.com/haskell-ci/setup-haskell/catalog"
	"github.com/haskell-ci/setup-haskell/cmd/setup-haskell/flags"
)

// Interactive is true if stderr is a terminal.
func Interactive() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// Debug is true if the user has requested debug-level logging, either with
// --debug or by re-running the workflow with debug logging enabled.
func Debug() bool {
	return ctx.Bool(flags.Debug) || os.Getenv("RUNNER_DEBUG") == "1"
}

// Catalog is the version catalog loaded by Init.
func Catalog() catalog.Catalog {
	return cat
}

// CurrentRequest merges CLI flags over step inputs.
func CurrentRequest() Request {
	return Request{
		GHCVersion:    TryStrings(ctx.String(flags.GHCVersion), inputs.GHCVersion),
		CabalVersion:  TryStrings(ctx.String(flags.CabalVersion), inputs.CabalVersion),
		StackVersion:  TryStrings(ctx.String(flags.StackVersion), inputs.StackVersion),
		StackNoGlobal: ctx.Bool(flags.StackNoGlobal) || inputs.StackNoGlobal != "",
		StackSetupGHC: ctx.Bool(flags.StackSetupGHC) || inputs.StackSetupGHC != "",
	}
}
