// Package probe answers whether named executables exist on the search path.
package probe

import "os/exec"

var lookPath = exec.LookPath

// Available reports whether name resolves to an executable on PATH.
// It is a pure query: no side effects, no privilege requirements.
func Available(name string) bool {
	_, err := lookPath(name)
	return err == nil
}

// ContainerEngine returns the first container engine present on PATH,
// preferring podman over docker, or "" when neither is installed.
func ContainerEngine() string {
	for _, engine := range []string{"podman", "docker"} {
		if Available(engine) {
			return engine
		}
	}
	return ""
}
