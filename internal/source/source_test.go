package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArtifactsShape(t *testing.T) {
	artifacts := Artifacts()
	require.Len(t, artifacts, 14)

	require.True(t, artifacts[0].EntryPoint)
	require.Equal(t, "ramalama", artifacts[0].Name)
	require.Equal(t, "bin/ramalama", artifacts[0].RelPath)

	for _, a := range artifacts[1:] {
		require.False(t, a.EntryPoint, a.Name)
		require.Equal(t, "ramalama/"+a.Name, a.RelPath)
		require.True(t, strings.HasSuffix(a.Name, ".py"), a.Name)
	}
}

func TestLocateRemote(t *testing.T) {
	r := NewResolver(RemoteFetch, "", "")
	got := r.Locate(Artifact{Name: "cli.py", RelPath: "ramalama/cli.py"})
	require.Equal(t, "https://raw.githubusercontent.com/containers/ramalama/main/ramalama/cli.py", got)
}

func TestLocateRemoteBranchOverride(t *testing.T) {
	r := NewResolver(RemoteFetch, "", "v0.7.5")
	got := r.Locate(Artifact{Name: "ramalama", RelPath: "bin/ramalama"})
	require.Equal(t, "https://raw.githubusercontent.com/containers/ramalama/v0.7.5/bin/ramalama", got)
	require.Equal(t, "v0.7.5", r.Branch())
}

func TestLocateLocalIgnoresHostAndBranch(t *testing.T) {
	r := NewResolver(LocalCopy, "https://example.com/mirror", "devel")
	got := r.Locate(Artifact{Name: "cli.py", RelPath: "ramalama/cli.py"})
	require.Equal(t, "ramalama/cli.py", got)
	require.NotContains(t, got, "devel")
}

func TestModeString(t *testing.T) {
	require.Equal(t, "local", LocalCopy.String())
	require.Equal(t, "remote", RemoteFetch.String())
}
