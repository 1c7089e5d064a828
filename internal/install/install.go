// Package install resolves the system directories a RamaLama installation
// lands in and places staged artifacts there, escalating through sudo when
// the target directories are not writable.
package install

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/containers/ramalama-install/internal/messages"
)

// Sentinel errors for unresolvable install targets.
var (
	ErrNoShareDir = errors.New(messages.InstallNoShareDir)
	ErrNoBinDir   = errors.New(messages.InstallNoBinDir)
)

var shareDirCandidates = []string{
	"/opt/homebrew/share",
	"/usr/local/share",
	"/usr/share",
}

var binDirCandidates = []string{
	"/opt/homebrew/bin",
	"/usr/local/bin",
	"/usr/bin",
	"/bin",
}

// ResolveShareDir returns the first existing shared data directory.
// Resolution never creates directories.
func ResolveShareDir(sys System) (string, error) {
	for _, dir := range shareDirCandidates {
		if info, err := sys.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", ErrNoShareDir
}

// ResolveBinDir returns the first candidate bin directory that is a component
// of the given PATH entries.
func ResolveBinDir(pathEntries []string) (string, error) {
	onPath := make(map[string]bool, len(pathEntries))
	for _, entry := range pathEntries {
		onPath[filepath.Clean(entry)] = true
	}
	for _, dir := range binDirCandidates {
		if onPath[dir] {
			return dir, nil
		}
	}
	return "", ErrNoBinDir
}

// File is one placement: a staged source path and its final destination.
type File struct {
	Src  string
	Dest string
}

// Runner executes external commands for privileged placement.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Placer copies staged files into their install destinations. When the
// process cannot write the target directories itself, placement runs
// install(1) through the runner, which prefixes sudo.
type Placer struct {
	sys    System
	runner Runner
}

// NewPlacer returns a placer backed by sys for direct writes and runner for
// elevated ones.
func NewPlacer(sys System, runner Runner) *Placer {
	return &Placer{sys: sys, runner: runner}
}

// Place creates every destination directory 0755 and installs every file
// 0755. It is called once per run, after all artifacts have been staged.
func (p *Placer) Place(ctx context.Context, files []File) error {
	dirs := destDirs(files)
	if p.canWriteDirectly(dirs) {
		return p.placeDirect(files, dirs)
	}
	return p.placeElevated(ctx, files, dirs)
}

// canWriteDirectly reports whether placement can skip privilege escalation:
// either the process is root, or every destination directory (or its nearest
// existing ancestor) is already writable.
func (p *Placer) canWriteDirectly(dirs []string) bool {
	if p.sys.Geteuid() == 0 {
		return true
	}
	for _, dir := range dirs {
		if !p.sys.Writable(nearestExisting(p.sys, dir)) {
			return false
		}
	}
	return true
}

func (p *Placer) placeDirect(files []File, dirs []string) error {
	for _, dir := range dirs {
		if err := p.sys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
	}
	for _, f := range files {
		if err := p.sys.CopyFile(f.Src, f.Dest, 0o755); err != nil {
			return fmt.Errorf(messages.InstallPlaceFailedFmt, f.Src, f.Dest, err)
		}
	}
	return nil
}

func (p *Placer) placeElevated(ctx context.Context, files []File, dirs []string) error {
	for _, dir := range dirs {
		if err := p.runner.Run(ctx, "install", "-m755", "-d", dir); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
	}
	for _, f := range files {
		if err := p.runner.Run(ctx, "install", "-m755", f.Src, f.Dest); err != nil {
			return fmt.Errorf(messages.InstallPlaceFailedFmt, f.Src, f.Dest, err)
		}
	}
	return nil
}

// destDirs returns the unique destination directories in first-seen order.
func destDirs(files []File) []string {
	seen := make(map[string]bool, len(files))
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f.Dest)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// nearestExisting walks up from path to the closest directory that exists.
func nearestExisting(sys System, path string) string {
	for {
		if _, err := sys.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
