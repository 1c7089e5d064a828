package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and fails commands matched by failOn.
type fakeRunner struct {
	calls  [][]string
	failOn func(argv []string) bool
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	argv := append([]string{name}, args...)
	r.calls = append(r.calls, argv)
	if r.failOn != nil && r.failOn(argv) {
		return errors.New("exit status 1")
	}
	return nil
}

// disableColor pins color output off so assertions see plain strings even
// when the test process has a terminal attached.
func disableColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func withContainerEngine(t *testing.T, engine string) {
	t.Helper()
	orig := containerEngineFunc
	containerEngineFunc = func() string { return engine }
	t.Cleanup(func() { containerEngineFunc = orig })
}

func joined(calls [][]string) []string {
	out := make([]string, 0, len(calls))
	for _, argv := range calls {
		out = append(out, strings.Join(argv, " "))
	}
	return out
}

func TestDnfInstallPackage(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer
	dnf := NewDnf(runner, &buf)

	require.True(t, dnf.InstallPackage(context.Background(), "ramalama"))
	require.Equal(t, []string{"dnf install -y ramalama"}, joined(runner.calls))
	require.Empty(t, buf.String())
}

func TestDnfInstallPackageSoftFailure(t *testing.T) {
	disableColor(t)
	runner := &fakeRunner{failOn: func([]string) bool { return true }}
	var buf bytes.Buffer
	dnf := NewDnf(runner, &buf)

	require.False(t, dnf.InstallPackage(context.Background(), "ramalama"))
	require.Contains(t, buf.String(), "dnf failed to install ramalama")
}

func TestDnfEnsureContainerRuntimeAlreadyPresent(t *testing.T) {
	withContainerEngine(t, "podman")
	runner := &fakeRunner{}
	var buf bytes.Buffer

	NewDnf(runner, &buf).EnsureContainerRuntime(context.Background())

	require.Empty(t, runner.calls)
	require.Contains(t, buf.String(), "podman is already installed")
}

func TestDnfEnsureContainerRuntimeInstallsPodman(t *testing.T) {
	withContainerEngine(t, "")
	runner := &fakeRunner{}
	var buf bytes.Buffer

	NewDnf(runner, &buf).EnsureContainerRuntime(context.Background())

	require.Equal(t, []string{"dnf install -y podman"}, joined(runner.calls))
	require.Contains(t, buf.String(), "Installed container engine podman")
}

func TestDnfEnsureContainerRuntimeFailureIsNonFatal(t *testing.T) {
	disableColor(t)
	withContainerEngine(t, "")
	runner := &fakeRunner{failOn: func([]string) bool { return true }}
	var buf bytes.Buffer

	NewDnf(runner, &buf).EnsureContainerRuntime(context.Background())

	require.Contains(t, buf.String(), "no container engine could be installed")
}

func TestAptEnsureContainerRuntimeFallsBackToDocker(t *testing.T) {
	withContainerEngine(t, "")
	runner := &fakeRunner{failOn: func(argv []string) bool {
		return strings.Join(argv, " ") == "apt-get install -y podman"
	}}
	var buf bytes.Buffer

	NewApt(runner, &buf).EnsureContainerRuntime(context.Background())

	require.Equal(t, []string{
		"apt-get update -q",
		"apt-get install -y podman",
		"apt-get install -y docker.io",
	}, joined(runner.calls))
	require.Contains(t, buf.String(), "Installed container engine docker.io")
}

func TestAptEnsureContainerRuntimeAllFailuresNonFatal(t *testing.T) {
	disableColor(t)
	withContainerEngine(t, "")
	runner := &fakeRunner{failOn: func([]string) bool { return true }}
	var buf bytes.Buffer

	NewApt(runner, &buf).EnsureContainerRuntime(context.Background())

	out := buf.String()
	require.Contains(t, out, "package index refresh failed")
	require.Contains(t, out, "no container engine could be installed")
}

func TestAptEnsureContainerRuntimeSkipsWhenEnginePresent(t *testing.T) {
	withContainerEngine(t, "docker")
	runner := &fakeRunner{}
	var buf bytes.Buffer

	NewApt(runner, &buf).EnsureContainerRuntime(context.Background())

	require.Empty(t, runner.calls)
	require.Contains(t, buf.String(), "docker is already installed")
}

func TestBrewInstallPackage(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer
	brew := NewBrew(runner, &buf)

	require.True(t, brew.InstallPackage(context.Background(), "llama.cpp"))
	require.Equal(t, []string{"brew install llama.cpp"}, joined(runner.calls))

	brew.EnsureContainerRuntime(context.Background())
	require.Len(t, runner.calls, 1) // no-op on macOS
}

func TestNoneAdapter(t *testing.T) {
	withContainerEngine(t, "")
	var buf bytes.Buffer
	none := NewNone(&buf)

	require.False(t, none.InstallPackage(context.Background(), "ramalama"))
	none.EnsureContainerRuntime(context.Background())
	require.Empty(t, buf.String())
}

func TestExecRunnerStreamsOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runner := ExecRunner{Stdout: &stdout, Stderr: &stderr}

	err := runner.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	require.Equal(t, "out\n", stdout.String())
	require.Equal(t, "err\n", stderr.String())
}

func TestExecRunnerReportsFailure(t *testing.T) {
	runner := ExecRunner{}
	err := runner.Run(context.Background(), "sh", "-c", "exit 3")
	require.Error(t, err)
}
