package config

import (
	"github.com/pkg/errors"

	"github.com/haskell-ci/setup-haskell/catalog"
	hserrors "github.com/haskell-ci/setup-haskell/errors"
	"github.com/haskell-ci/setup-haskell/tool"
)

// InputNames are the step inputs this program reads.
var InputNames = []string{
	"ghc-version",
	"cabal-version",
	"stack-version",
	"stack-no-global",
	"stack-setup-ghc",
}

// Inputs are the raw step inputs. Every input is a string; the boolean ones
// count as set when non-empty.
type Inputs struct {
	GHCVersion    string `mapstructure:"ghc-version"`
	CabalVersion  string `mapstructure:"cabal-version"`
	StackVersion  string `mapstructure:"stack-version"`
	StackNoGlobal string `mapstructure:"stack-no-global"`
	StackSetupGHC string `mapstructure:"stack-setup-ghc"`
}

// Request is what the user asked for, before defaults and resolution.
type Request struct {
	GHCVersion   string
	CabalVersion string
	StackVersion string

	// StackNoGlobal skips the global GHC and cabal installs; stack provides
	// its own toolchain.
	StackNoGlobal bool
	// StackSetupGHC runs `stack setup` for the requested GHC.
	StackSetupGHC bool
}

// Program is the plan for one tool.
type Program struct {
	Enable   bool
	Exact    string // The version as the user wrote it.
	Resolved string // The version that will be installed.
}

// Options is the resolved plan for a run. It is computed once, before any
// tool is installed.
type Options struct {
	GHC   Program
	Cabal Program
	Stack Program

	StackSetup bool
}

// Program returns the plan for a tool.
func (o Options) Program(t tool.Tool) Program {
	switch t {
	case tool.GHC:
		return o.GHC
	case tool.Cabal:
		return o.Cabal
	case tool.Stack:
		return o.Stack
	}
	return Program{}
}

// Enabled lists the tools to install, in installation order.
func (o Options) Enabled() []tool.Tool {
	var out []tool.Tool
	for _, t := range tool.All {
		if o.Program(t).Enable {
			out = append(out, t)
		}
	}
	return out
}

// Resolve validates a request and resolves every enabled version against the
// catalog. It performs no I/O besides logging.
func Resolve(req Request, c catalog.Catalog) (Options, error) {
	var problems []string
	if req.StackNoGlobal && req.StackVersion == "" {
		problems = append(problems, "stack-version is required if stack-no-global is set")
	}
	if req.StackSetupGHC && req.StackVersion == "" {
		problems = append(problems, "stack-version is required if stack-setup-ghc is set")
	}
	if len(problems) > 0 {
		return Options{}, hserrors.Configuration(problems...)
	}

	global := !req.StackNoGlobal
	ghc, err := program(tool.GHC, TryStrings(req.GHCVersion, c.GHC.Version), c, global)
	if err != nil {
		return Options{}, err
	}
	cabal, err := program(tool.Cabal, TryStrings(req.CabalVersion, c.Cabal.Version), c, global)
	if err != nil {
		return Options{}, err
	}
	stack, err := program(tool.Stack, req.StackVersion, c, req.StackVersion != "")
	if err != nil {
		return Options{}, err
	}

	return Options{
		GHC:        ghc,
		Cabal:      cabal,
		Stack:      stack,
		StackSetup: req.StackSetupGHC,
	}, nil
}

// program resolves a tool's version. GHC is resolved even when the global
// install is skipped, because `stack setup` still needs it.
func program(t tool.Tool, exact string, c catalog.Catalog, enable bool) (Program, error) {
	p := Program{Enable: enable, Exact: exact}
	if exact == "" {
		return p, nil
	}
	if !enable && t != tool.GHC {
		return p, nil
	}
	resolved, err := catalog.Resolve(exact, c.Entry(t).Supported)
	if err != nil {
		return Program{}, errors.Wrapf(err, "could not resolve %s version %q", t, exact)
	}
	p.Resolved = resolved
	return p, nil
}
