package pkgmgr

import (
	"context"
	"fmt"
	"io"

	"github.com/containers/ramalama-install/internal/messages"
)

// Dnf adapts the Fedora/RHEL dnf package manager.
type Dnf struct {
	runner Runner
	out    io.Writer
}

// NewDnf returns a dnf adapter that reports progress to out.
func NewDnf(runner Runner, out io.Writer) *Dnf {
	return &Dnf{runner: runner, out: out}
}

// Name returns "dnf".
func (d *Dnf) Name() string { return "dnf" }

// InstallPackage runs `dnf install -y pkg`. Failure is a soft failure.
func (d *Dnf) InstallPackage(ctx context.Context, pkg string) bool {
	if err := d.runner.Run(ctx, "dnf", "install", "-y", pkg); err != nil {
		warnInstallFailed(d.out, d.Name(), pkg)
		return false
	}
	return true
}

// EnsureContainerRuntime installs podman unless a container engine is
// already present. Failure leaves the host without an engine, which is
// tolerated: RamaLama falls back to running models directly.
func (d *Dnf) EnsureContainerRuntime(ctx context.Context) {
	if engine := containerEngineFunc(); engine != "" {
		_, _ = fmt.Fprintf(d.out, messages.RuntimePresentFmt, engine)
		return
	}
	if d.InstallPackage(ctx, "podman") {
		_, _ = fmt.Fprintf(d.out, messages.RuntimeProvisionedFmt, "podman")
		return
	}
	_, _ = warnColor.Fprint(d.out, messages.RuntimeUnavailable)
}
