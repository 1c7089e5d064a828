// Package platform decides which operating system and package manager the
// installer is dealing with, and whether the invoking user can acquire the
// privileges installation needs.
package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"

	"github.com/containers/ramalama-install/internal/messages"
	"github.com/containers/ramalama-install/internal/probe"
)

// Detection failures the caller maps to distinct exit codes.
var (
	// ErrRootOnDarwin rejects root invocations on macOS.
	ErrRootOnDarwin = errors.New(messages.PlatformRootOnDarwin)
	// ErrBrewMissing means Homebrew is required but absent.
	ErrBrewMissing = errors.New(messages.PlatformBrewMissing)
	// ErrSudoMissing means a non-root Linux user has no way to escalate.
	ErrSudoMissing = errors.New(messages.PlatformSudoMissing)
)

// UnsupportedOSError names an operating system the installer cannot handle.
type UnsupportedOSError struct {
	OS string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf(messages.PlatformUnsupportedFmt, e.OS)
}

// Platform describes the detected host.
type Platform struct {
	OS      string
	Manager string
	IsRoot  bool
	HasSudo bool
	// Distro is a human-readable distribution string, informational only.
	Distro string
}

// Describe renders the platform for the detection report line.
func (p Platform) Describe() string {
	suffix := ""
	if p.Distro != "" {
		suffix = fmt.Sprintf(messages.PlatformDistroSuffixFmt, p.Distro)
	}
	return fmt.Sprintf(messages.PlatformDetectedFmt, p.OS, suffix)
}

var (
	goosFunc     = func() string { return runtime.GOOS }
	geteuid      = unix.Geteuid
	available    = probe.Available
	readCmdline  = func() string { data, _ := os.ReadFile("/proc/cmdline"); return string(data) }
	platformInfo = host.PlatformInformationWithContext
)

// Detect inspects the host and returns the platform the installer will
// operate on. dnf is preferred on Linux unless the host is ostree-based,
// where layered package installs need a different mechanism; apt is the
// fallback, and a host with neither still installs by file placement.
func Detect(ctx context.Context) (Platform, error) {
	p := Platform{
		OS:      goosFunc(),
		IsRoot:  geteuid() == 0,
		HasSudo: available("sudo"),
	}

	switch p.OS {
	case "linux":
		if !p.IsRoot && !p.HasSudo {
			return Platform{}, ErrSudoMissing
		}
		switch {
		case available("dnf") && !ostreeHost():
			p.Manager = "dnf"
		case available("apt-get"):
			p.Manager = "apt"
		default:
			p.Manager = "none"
		}
		p.Distro = distroString(ctx)
	case "darwin":
		if p.IsRoot {
			return Platform{}, ErrRootOnDarwin
		}
		if !available("brew") {
			return Platform{}, ErrBrewMissing
		}
		p.Manager = "brew"
	default:
		return Platform{}, &UnsupportedOSError{OS: p.OS}
	}
	return p, nil
}

// ostreeHost reports whether the kernel was booted from an ostree deployment.
func ostreeHost() bool {
	return strings.Contains(readCmdline(), "ostree=")
}

// distroString returns "<platform> <version>" when gopsutil can tell, and
// the empty string when it cannot. Detection failures are not fatal.
func distroString(ctx context.Context) string {
	name, _, version, err := platformInfo(ctx)
	if err != nil || name == "" {
		return ""
	}
	return strings.TrimSpace(name + " " + version)
}
