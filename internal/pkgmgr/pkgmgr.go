// Package pkgmgr wraps the host OS package managers behind a single
// interface. Installs are best-effort: a failed package install is reported
// to the user and as a soft failure to the caller, never as a fatal error.
package pkgmgr

import (
	"context"
	"io"
	"os/exec"

	"github.com/fatih/color"

	"github.com/containers/ramalama-install/internal/messages"
	"github.com/containers/ramalama-install/internal/probe"
)

var containerEngineFunc = probe.ContainerEngine

var warnColor = color.New(color.FgYellow)

// Runner executes external commands on behalf of a package manager.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands on the host, prefixing sudo when Sudo is set.
// Linux package managers require elevated privileges; Homebrew must run as
// the invoking user.
type ExecRunner struct {
	Sudo   bool
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args, streaming output to the configured writers.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	argv := append([]string{name}, args...)
	if r.Sudo {
		argv = append([]string{"sudo"}, argv...)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Manager installs named OS packages and provisions a container runtime.
type Manager interface {
	// Name identifies the underlying package manager command.
	Name() string
	// InstallPackage installs pkg non-interactively. A failure is reported
	// to the user and returned as false; it is never fatal to the caller.
	InstallPackage(ctx context.Context, pkg string) bool
	// EnsureContainerRuntime makes a best-effort attempt to provide a
	// container engine. The run proceeds regardless of the outcome.
	EnsureContainerRuntime(ctx context.Context)
}

// warnInstallFailed emits the shared soft-failure line for a package install.
func warnInstallFailed(out io.Writer, manager string, pkg string) {
	_, _ = warnColor.Fprintf(out, messages.PkgInstallFailedFmt, manager, pkg)
}
