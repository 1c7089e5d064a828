package pkgmgr

import (
	"context"
	"fmt"
	"io"

	"github.com/containers/ramalama-install/internal/messages"
)

// None is the adapter for hosts without a supported package manager.
// Installation still proceeds through manual file placement; only package
// provisioning is unavailable.
type None struct {
	out io.Writer
}

// NewNone returns the no-op adapter.
func NewNone(out io.Writer) *None {
	return &None{out: out}
}

// Name returns "none".
func (n *None) Name() string { return "none" }

// InstallPackage always reports a soft failure.
func (n *None) InstallPackage(context.Context, string) bool { return false }

// EnsureContainerRuntime only reports whether an engine is already present.
func (n *None) EnsureContainerRuntime(context.Context) {
	if engine := containerEngineFunc(); engine != "" {
		_, _ = fmt.Fprintf(n.out, messages.RuntimePresentFmt, engine)
	}
}
