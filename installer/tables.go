package installer

import (
	"path/filepath"
	"strings"

	"github.com/haskell-ci/setup-haskell/env"
	"github.com/haskell-ci/setup-haskell/tool"
)

// Kind identifies an install strategy in the static tables below.
type Kind int

const (
	Apt          Kind = iota // Ubuntu packages from the hvr/ghc PPA.
	Chocolatey               // Windows packages.
	Ghcup                    // The ghcup bootstrap installer.
	StackRelease             // Stack's own release archives.
)

func (k Kind) String() string {
	switch k {
	case Apt:
		return "apt"
	case Chocolatey:
		return "chocolatey"
	case Ghcup:
		return "ghcup"
	case StackRelease:
		return "stack-release"
	}
	return "unknown"
}

var order = map[tool.Tool]map[env.OS][]Kind{
	tool.GHC: {
		env.Linux:   {Apt, Ghcup},
		env.Darwin:  {Ghcup},
		env.Windows: {Chocolatey},
	},
	tool.Cabal: {
		env.Linux:   {Apt, Ghcup},
		env.Darwin:  {Ghcup},
		env.Windows: {Chocolatey},
	},
	tool.Stack: {
		env.Linux:   {StackRelease},
		env.Darwin:  {StackRelease},
		env.Windows: {StackRelease},
	},
}

// Order returns the strategies to try, in order, for a tool on a platform.
func Order(t tool.Tool, os env.OS) []Kind {
	return order[t][os]
}

type candidate struct {
	source string
	dir    string

	// shared is set for directories that are not specific to one version.
	// Their executable must report the requested version.
	shared bool
}

type locator func(ctx env.Context, t tool.Tool, version string) candidate

// Stack has no conventional locations: it is only ever installed into the
// tool cache.
var locations = map[tool.Tool]map[env.OS][]locator{
	tool.GHC: {
		env.Linux:   {aptPath, ghcupPath},
		env.Darwin:  {ghcupPath},
		env.Windows: {chocolateyPath},
	},
	tool.Cabal: {
		env.Linux:   {aptPath, ghcupPath},
		env.Darwin:  {ghcupPath},
		env.Windows: {chocolateyPath},
	},
}

// conventional returns the conventional install directories to probe for a tool,
// in probe order.
func conventional(ctx env.Context, t tool.Tool, version string) []candidate {
	var out []candidate
	for _, l := range locations[t][ctx.OS] {
		out = append(out, l(ctx, t, version))
	}
	return out
}

// /opt/ghc/8.6.5/bin, /opt/cabal/3.0/bin
func aptPath(ctx env.Context, t tool.Tool, version string) candidate {
	if ctx.Root == "" {
		return candidate{source: Apt.String()}
	}
	v := version
	if t == tool.Cabal {
		v = majorMinor(version)
	}
	return candidate{source: Apt.String(), dir: filepath.Join(ctx.Root, "opt", t.String(), v, "bin")}
}

// ~/.ghcup/ghc/8.6.5/bin for GHC, ~/.ghcup/bin for everything else.
func ghcupPath(ctx env.Context, t tool.Tool, version string) candidate {
	if ctx.Home == "" {
		return candidate{source: Ghcup.String()}
	}
	if t == tool.GHC {
		return candidate{source: Ghcup.String(), dir: filepath.Join(ctx.Home, ".ghcup", "ghc", version, "bin")}
	}
	return candidate{source: Ghcup.String(), dir: filepath.Join(ctx.Home, ".ghcup", "bin"), shared: true}
}

// <choco>/lib/ghc.8.6.5/tools/ghc-8.6.5/bin
func chocolateyPath(ctx env.Context, t tool.Tool, version string) candidate {
	if ctx.Chocolatey == "" {
		return candidate{source: Chocolatey.String()}
	}
	name := t.String()
	dir := filepath.Join(ctx.Chocolatey, "lib", name+"."+version, "tools", name+"-"+version)
	if t == tool.GHC {
		dir = filepath.Join(dir, "bin")
	}
	return candidate{source: Chocolatey.String(), dir: dir}
}

func majorMinor(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// Sources are the download locations used by strategies that fetch files.
type Sources struct {
	GhcupVersion string
	// GhcupURL is formatted with (version, platform, version).
	GhcupURL string
	// StackURL is formatted with (version, version, build, extension).
	StackURL string
	// StackLatestURL is formatted with (build, extension).
	StackLatestURL string
}

var DefaultSources = Sources{
	GhcupVersion:   "0.1.8",
	GhcupURL:       "https://downloads.haskell.org/~ghcup/%s/x86_64-%s-ghcup-%s",
	StackURL:       "https://github.com/commercialhaskell/stack/releases/download/v%s/stack-%s-%s.%s",
	StackLatestURL: "https://get.haskellstack.org/stable/%s.%s",
}
