package flags

import (
	"reflect"

	"github.com/urfave/cli"
)

// Combine merges flag lists, dropping exact duplicates. It panics if two
// different flags share a name.
func Combine(f ...[]cli.Flag) []cli.Flag {
	seen := make(map[string]cli.Flag)
	var combined []cli.Flag
	for _, flags := range f {
		for _, flag := range flags {
			prev, ok := seen[flag.GetName()]
			if ok && !reflect.DeepEqual(prev, flag) {
				panic("conflicting flags: " + flag.GetName())
			}
			if ok {
				continue
			}
			seen[flag.GetName()] = flag
			combined = append(combined, flag)
		}
	}
	return combined
}

func WithGlobalFlags(f []cli.Flag) []cli.Flag {
	return append(f, Global...)
}

var (
	Global   = []cli.Flag{CatalogF, DebugF}
	Catalog  = "catalog"
	CatalogF = cli.StringFlag{Name: Catalog, Usage: "path to a version catalog (.yml, .yaml or .toml) (default: built in)"}
	Debug    = "debug"
	DebugF   = cli.BoolFlag{Name: Debug, Usage: "print debug information to stderr"}

	InputsFile = "inputs-file"
)

func WithVersionFlags(f []cli.Flag) []cli.Flag {
	return append(f, Versions...)
}

// Every version flag falls back to the step input of the same name.
var (
	Versions       = []cli.Flag{GHCVersionF, CabalVersionF, StackVersionF, StackNoGlobalF, StackSetupGHCF}
	GHCVersion     = "ghc-version"
	GHCVersionF    = cli.StringFlag{Name: GHCVersion, Usage: "GHC version to install, a prefix of one, or 'latest'"}
	CabalVersion   = "cabal-version"
	CabalVersionF  = cli.StringFlag{Name: CabalVersion, Usage: "cabal-install version to install, a prefix of one, or 'latest'"}
	StackVersion   = "stack-version"
	StackVersionF  = cli.StringFlag{Name: StackVersion, Usage: "stack version to install; stack is skipped when unset"}
	StackNoGlobal  = "stack-no-global"
	StackNoGlobalF = cli.BoolFlag{Name: StackNoGlobal, Usage: "do not install GHC and cabal globally (requires --stack-version)"}
	StackSetupGHC  = "stack-setup-ghc"
	StackSetupGHCF = cli.BoolFlag{Name: StackSetupGHC, Usage: "install the requested GHC through `stack setup` (requires --stack-version)"}
)
