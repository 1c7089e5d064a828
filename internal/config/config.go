// Package config reads the optional RamaLama configuration file. The
// installer only consumes the [install] table; everything else in the file
// belongs to RamaLama itself and is ignored.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/containers/ramalama-install/internal/messages"
)

// Install is the [install] table of ramalama.conf.
type Install struct {
	// Host overrides the raw-content host artifacts are fetched from.
	Host string `toml:"host"`
	// Branch overrides the branch artifacts are fetched from.
	Branch string `toml:"branch"`
	// NoContainer skips container-runtime provisioning.
	NoContainer bool `toml:"nocontainer"`
}

type file struct {
	Install Install `toml:"install"`
}

// EnvConfigPath names the environment variable that points at an explicit
// configuration file, taking precedence over the standard locations.
const EnvConfigPath = "RAMALAMA_CONFIG"

var (
	osGetenv   = os.Getenv
	osReadFile = os.ReadFile
	expandHome = homedir.Expand
)

// candidatePaths returns the configuration locations in priority order.
// The first path that exists wins.
func candidatePaths() []string {
	paths := []string{}
	if explicit := osGetenv(EnvConfigPath); explicit != "" {
		paths = append(paths, explicit)
	}
	paths = append(paths,
		"/usr/share/ramalama/ramalama.conf",
		"/usr/local/share/ramalama/ramalama.conf",
		"/etc/ramalama/ramalama.conf",
	)
	if xdg := osGetenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ramalama", "ramalama.conf"))
	} else {
		paths = append(paths, "~/.config/ramalama/ramalama.conf")
	}
	return paths
}

// Load reads the [install] table from the first configuration file that
// exists. No file existing is not an error; a file that exists but cannot be
// read or parsed is.
func Load() (Install, error) {
	for _, path := range candidatePaths() {
		expanded, err := expandHome(path)
		if err != nil {
			return Install{}, fmt.Errorf(messages.ConfigExpandHomeFailedFmt, path, err)
		}
		data, err := osReadFile(expanded)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Install{}, fmt.Errorf(messages.ConfigReadFailedFmt, expanded, err)
		}
		return parse(data, expanded)
	}
	return Install{}, nil
}

func parse(data []byte, source string) (Install, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Install{}, fmt.Errorf(messages.ConfigParseFailedFmt, source, err)
	}
	return f.Install, nil
}
