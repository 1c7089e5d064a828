package pkgmgr

import (
	"context"
	"fmt"
	"io"

	"github.com/containers/ramalama-install/internal/messages"
)

// Apt adapts the Debian/Ubuntu apt-get package manager.
type Apt struct {
	runner Runner
	out    io.Writer
}

// NewApt returns an apt adapter that reports progress to out.
func NewApt(runner Runner, out io.Writer) *Apt {
	return &Apt{runner: runner, out: out}
}

// Name returns "apt".
func (a *Apt) Name() string { return "apt" }

// InstallPackage runs `apt-get install -y pkg`. Failure is a soft failure.
func (a *Apt) InstallPackage(ctx context.Context, pkg string) bool {
	if err := a.runner.Run(ctx, "apt-get", "install", "-y", pkg); err != nil {
		warnInstallFailed(a.out, a.Name(), pkg)
		return false
	}
	return true
}

// EnsureContainerRuntime refreshes the package index (best-effort), then
// tries podman and falls back to docker.io. Neither failure aborts the run.
func (a *Apt) EnsureContainerRuntime(ctx context.Context) {
	if engine := containerEngineFunc(); engine != "" {
		_, _ = fmt.Fprintf(a.out, messages.RuntimePresentFmt, engine)
		return
	}
	if err := a.runner.Run(ctx, "apt-get", "update", "-q"); err != nil {
		_, _ = warnColor.Fprint(a.out, messages.PkgIndexRefreshFailed)
	}
	if a.InstallPackage(ctx, "podman") {
		_, _ = fmt.Fprintf(a.out, messages.RuntimeProvisionedFmt, "podman")
		return
	}
	if a.InstallPackage(ctx, "docker.io") {
		_, _ = fmt.Fprintf(a.out, messages.RuntimeProvisionedFmt, "docker.io")
		return
	}
	_, _ = warnColor.Fprint(a.out, messages.RuntimeUnavailable)
}
