// Package source describes the files a RamaLama installation consists of and
// resolves where each one is fetched from.
package source

import (
	"fmt"
	"path/filepath"
)

// Mode selects where artifacts are read from.
type Mode int

const (
	// RemoteFetch downloads artifacts from the raw-content host.
	RemoteFetch Mode = iota
	// LocalCopy reads artifacts from a source checkout rooted at the
	// current working directory.
	LocalCopy
)

// String names the mode for log output.
func (m Mode) String() string {
	if m == LocalCopy {
		return "local"
	}
	return "remote"
}

// DefaultHost serves the repository's raw file content.
const DefaultHost = "https://raw.githubusercontent.com/containers/ramalama"

// DefaultBranch is used when neither the BRANCH environment variable nor the
// configuration file names one.
const DefaultBranch = "main"

// Artifact is one file of the installation unit. RelPath is the path inside
// the source tree, always slash-separated.
type Artifact struct {
	Name       string
	RelPath    string
	EntryPoint bool
}

// Artifacts returns the complete installation unit in placement order: the
// entry-point executable first, then the library modules.
func Artifacts() []Artifact {
	libs := []string{
		"__init__.py",
		"cli.py",
		"common.py",
		"gpu_detector.py",
		"huggingface.py",
		"model.py",
		"oci.py",
		"ollama.py",
		"rag.py",
		"shortnames.py",
		"toml_parser.py",
		"url.py",
		"version.py",
	}
	out := make([]Artifact, 0, len(libs)+1)
	out = append(out, Artifact{Name: "ramalama", RelPath: "bin/ramalama", EntryPoint: true})
	for _, lib := range libs {
		out = append(out, Artifact{Name: lib, RelPath: "ramalama/" + lib})
	}
	return out
}

// Resolver maps artifacts to locators for one run.
type Resolver struct {
	mode   Mode
	host   string
	branch string
}

// NewResolver builds a resolver. Empty host or branch fall back to the
// defaults.
func NewResolver(mode Mode, host, branch string) Resolver {
	if host == "" {
		host = DefaultHost
	}
	if branch == "" {
		branch = DefaultBranch
	}
	return Resolver{mode: mode, host: host, branch: branch}
}

// Mode reports the resolver's source mode.
func (r Resolver) Mode() Mode { return r.mode }

// Branch reports the branch remote locators point at.
func (r Resolver) Branch() string { return r.branch }

// Locate returns where a fetches its artifact from: a URL on the raw-content
// host in remote mode, a filesystem path relative to the source tree root in
// local mode.
func (r Resolver) Locate(a Artifact) string {
	if r.mode == LocalCopy {
		return filepath.FromSlash(a.RelPath)
	}
	return fmt.Sprintf("%s/%s/%s", r.host, r.branch, a.RelPath)
}
