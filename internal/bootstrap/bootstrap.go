// Package bootstrap orchestrates a RamaLama installation: platform
// detection, dependency provisioning, artifact staging, and placement.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/containers/ramalama-install/internal/config"
	"github.com/containers/ramalama-install/internal/fetch"
	"github.com/containers/ramalama-install/internal/install"
	"github.com/containers/ramalama-install/internal/messages"
	"github.com/containers/ramalama-install/internal/pkgmgr"
	"github.com/containers/ramalama-install/internal/platform"
	"github.com/containers/ramalama-install/internal/source"
	"github.com/containers/ramalama-install/internal/terminal"
)

// EnvBranch overrides the branch artifacts are fetched from.
const EnvBranch = "BRANCH"

// placer is satisfied by *install.Placer.
type placer interface {
	Place(ctx context.Context, files []install.File) error
}

var (
	loadConfig     = config.Load
	detectPlatform = platform.Detect
	isInteractive  = terminal.IsInteractive
	osGetenv       = os.Getenv
	osStat         = os.Stat

	newManager = func(plat platform.Platform, stdout, stderr io.Writer) pkgmgr.Manager {
		runner := pkgmgr.ExecRunner{Sudo: !plat.IsRoot, Stdout: stdout, Stderr: stderr}
		switch plat.Manager {
		case "dnf":
			return pkgmgr.NewDnf(runner, stdout)
		case "apt":
			return pkgmgr.NewApt(runner, stdout)
		case "brew":
			return pkgmgr.NewBrew(pkgmgr.ExecRunner{Stdout: stdout, Stderr: stderr}, stdout)
		default:
			return pkgmgr.NewNone(stdout)
		}
	}

	newFetcher = func(mode source.Mode, stdout io.Writer) fetch.Fetcher {
		if mode == source.LocalCopy {
			return fetch.Copier{Out: stdout}
		}
		return fetch.NewDownloader(stdout)
	}

	newPlacer = func(sudo bool, stdout, stderr io.Writer) placer {
		runner := pkgmgr.ExecRunner{Sudo: sudo, Stdout: stdout, Stderr: stderr}
		return install.NewPlacer(install.RealSystem{}, runner)
	}

	newPrompter = func(assumeYes bool) install.Prompter {
		if assumeYes || !isInteractive() {
			return install.StaticPrompter{Answer: true}
		}
		return install.HuhPrompter{}
	}

	resolveShareDir = func() (string, error) {
		return install.ResolveShareDir(install.RealSystem{})
	}
)

// Options select the behavior of one installer run.
type Options struct {
	// Local stages artifacts from the current directory instead of the
	// raw-content host.
	Local bool
	// Yes answers every confirmation prompt with yes.
	Yes bool
	// Branch overrides the branch to fetch from, ahead of the BRANCH
	// environment variable and the configuration file.
	Branch string
	// Query, when non-empty, is a get_* installation query: print the
	// shared install directory and do nothing else.
	Query string

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes one installer invocation. Failures return an *ExitError
// carrying the contracted process exit code.
func Run(ctx context.Context, opts Options) error {
	if opts.Query != "" {
		return runQuery(opts.Stdout)
	}

	cfg, err := loadConfig()
	if err != nil {
		return exitError(err)
	}

	plat, err := detectPlatform(ctx)
	if err != nil {
		return exitError(err)
	}
	_, _ = fmt.Fprint(opts.Stdout, plat.Describe())

	mode := source.RemoteFetch
	if opts.Local {
		mode = source.LocalCopy
	}
	branch, branchOverridden := resolveBranch(opts.Branch, cfg)

	mgr := newManager(plat, opts.Stdout, opts.Stderr)
	ensureDependencies(ctx, plat, mgr, cfg)

	if tryNativePackage(ctx, mode, branchOverridden, mgr, opts.Stdout) {
		return nil
	}

	shareDir, err := resolveShareDir()
	if err != nil {
		return exitError(err)
	}
	binDir, err := install.ResolveBinDir(filepath.SplitList(osGetenv("PATH")))
	if err != nil {
		return exitError(err)
	}

	entryDest := filepath.Join(binDir, "ramalama")
	if err := confirmOverwrite(entryDest, opts.Yes); err != nil {
		return exitError(err)
	}

	ws, err := NewWorkspace()
	if err != nil {
		return exitError(err)
	}
	defer ws.Cleanup()

	resolver := source.NewResolver(mode, cfg.Host, branch)
	fetcher := newFetcher(mode, opts.Stdout)

	libDir := filepath.Join(shareDir, "ramalama", "ramalama")
	var files []install.File
	for _, a := range source.Artifacts() {
		staged := ws.Path(a.Name)
		if err := fetcher.Fetch(ctx, a, resolver.Locate(a), staged); err != nil {
			return exitError(err)
		}
		dest := filepath.Join(libDir, a.Name)
		if a.EntryPoint {
			dest = entryDest
		}
		files = append(files, install.File{Src: staged, Dest: dest})
	}

	p := newPlacer(!plat.IsRoot, opts.Stdout, opts.Stderr)
	if err := p.Place(ctx, files); err != nil {
		return exitError(err)
	}

	_, _ = color.New(color.FgGreen).Fprintf(opts.Stdout, messages.InstallCompleteFmt, entryDest, filepath.Join(shareDir, "ramalama"))
	return nil
}

// runQuery prints the shared install directory and nothing else.
func runQuery(stdout io.Writer) error {
	shareDir, err := resolveShareDir()
	if err != nil {
		return exitError(err)
	}
	_, _ = fmt.Fprintln(stdout, filepath.Join(shareDir, "ramalama"))
	return nil
}

// resolveBranch picks the branch in precedence order: --branch flag, BRANCH
// environment variable, configuration file, default. overridden reports
// whether anything other than the default chose it.
func resolveBranch(flagBranch string, cfg config.Install) (branch string, overridden bool) {
	if flagBranch != "" {
		return flagBranch, true
	}
	if env := osGetenv(EnvBranch); env != "" {
		return env, true
	}
	if cfg.Branch != "" {
		return cfg.Branch, true
	}
	return source.DefaultBranch, false
}

// ensureDependencies provisions what RamaLama needs beyond its own files:
// llama.cpp on macOS, a container engine on Linux unless the configuration
// opts out. All of it is best-effort.
func ensureDependencies(ctx context.Context, plat platform.Platform, mgr pkgmgr.Manager, cfg config.Install) {
	if plat.OS == "darwin" {
		_ = mgr.InstallPackage(ctx, "llama.cpp")
		return
	}
	if !cfg.NoContainer {
		mgr.EnsureContainerRuntime(ctx)
	}
}

// tryNativePackage installs ramalama from the distro repositories when that
// can satisfy the run: remote mode, default branch, dnf or apt present.
func tryNativePackage(ctx context.Context, mode source.Mode, branchOverridden bool, mgr pkgmgr.Manager, stdout io.Writer) bool {
	if mode != source.RemoteFetch || branchOverridden {
		return false
	}
	if name := mgr.Name(); name != "dnf" && name != "apt" {
		return false
	}
	if !mgr.InstallPackage(ctx, "ramalama") {
		return false
	}
	_, _ = fmt.Fprintf(stdout, messages.NativeInstalledFmt, mgr.Name())
	return true
}

// confirmOverwrite asks before replacing an existing installation. --yes and
// non-interactive sessions proceed without prompting.
func confirmOverwrite(entryDest string, assumeYes bool) error {
	if _, err := osStat(entryDest); err != nil {
		return nil
	}
	prompter := newPrompter(assumeYes)
	ok, err := prompter.ConfirmOverwrite(fmt.Sprintf(messages.InstallOverwritePromptFmt, entryDest))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(messages.InstallCancelled)
	}
	return nil
}
