package pkgmgr

import (
	"context"
	"io"
)

// Brew adapts Homebrew on macOS. It installs the single native dependency
// RamaLama needs there; container-runtime provisioning is not attempted
// through it.
type Brew struct {
	runner Runner
	out    io.Writer
}

// NewBrew returns a Homebrew adapter that reports progress to out.
func NewBrew(runner Runner, out io.Writer) *Brew {
	return &Brew{runner: runner, out: out}
}

// Name returns "brew".
func (b *Brew) Name() string { return "brew" }

// InstallPackage runs `brew install pkg` as the invoking user.
func (b *Brew) InstallPackage(ctx context.Context, pkg string) bool {
	if err := b.runner.Run(ctx, "brew", "install", pkg); err != nil {
		warnInstallFailed(b.out, b.Name(), pkg)
		return false
	}
	return true
}

// EnsureContainerRuntime is a no-op on macOS.
func (b *Brew) EnsureContainerRuntime(context.Context) {}
