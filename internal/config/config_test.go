package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// withFS replaces the env and filesystem seams with map-backed fakes so
// tests never observe real host configuration.
func withFS(t *testing.T, env map[string]string, files map[string]string) {
	t.Helper()
	origGetenv, origReadFile := osGetenv, osReadFile
	osGetenv = func(key string) string { return env[key] }
	osReadFile = func(path string) ([]byte, error) {
		if data, ok := files[path]; ok {
			return []byte(data), nil
		}
		return nil, os.ErrNotExist
	}
	t.Cleanup(func() {
		osGetenv = origGetenv
		osReadFile = origReadFile
	})
}

func TestLoadExplicitPathWins(t *testing.T) {
	withFS(t,
		map[string]string{EnvConfigPath: "/tmp/override.conf"},
		map[string]string{
			"/tmp/override.conf":                "[install]\nhost = \"https://mirror.example.com/ramalama\"\nbranch = \"v0.7\"\nnocontainer = true\n",
			"/usr/share/ramalama/ramalama.conf": "[install]\nbranch = \"system\"\n",
		},
	)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://mirror.example.com/ramalama", cfg.Host)
	require.Equal(t, "v0.7", cfg.Branch)
	require.True(t, cfg.NoContainer)
}

func TestLoadPriorityOrder(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{
			name: "usr share before usr local share",
			files: map[string]string{
				"/usr/share/ramalama/ramalama.conf":       "[install]\nbranch = \"a\"\n",
				"/usr/local/share/ramalama/ramalama.conf": "[install]\nbranch = \"b\"\n",
			},
			want: "a",
		},
		{
			name: "etc before xdg",
			files: map[string]string{
				"/etc/ramalama/ramalama.conf": "[install]\nbranch = \"c\"\n",
				"/xdg/ramalama/ramalama.conf": "[install]\nbranch = \"d\"\n",
			},
			want: "c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFS(t, map[string]string{"XDG_CONFIG_HOME": "/xdg"}, tt.files)

			cfg, err := Load()
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Branch)
		})
	}
}

func TestLoadXDGLocation(t *testing.T) {
	withFS(t,
		map[string]string{"XDG_CONFIG_HOME": "/xdg"},
		map[string]string{
			filepath.Join("/xdg", "ramalama", "ramalama.conf"): "[install]\nbranch = \"release-0.8\"\n",
		},
	)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "release-0.8", cfg.Branch)
	require.Empty(t, cfg.Host)
	require.False(t, cfg.NoContainer)
}

func TestLoadHomeFallbackWithoutXDG(t *testing.T) {
	withFS(t, nil, nil)
	origExpand := expandHome
	var expanded string
	expandHome = func(path string) (string, error) {
		expanded = path
		return path, nil
	}
	t.Cleanup(func() { expandHome = origExpand })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Install{}, cfg)
	require.Equal(t, "~/.config/ramalama/ramalama.conf", expanded)
}

func TestLoadNoFileIsZeroValue(t *testing.T) {
	withFS(t, map[string]string{"XDG_CONFIG_HOME": "/xdg"}, nil)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Install{}, cfg)
}

func TestLoadIgnoresUnrelatedTables(t *testing.T) {
	withFS(t,
		map[string]string{EnvConfigPath: "/tmp/ramalama.conf"},
		map[string]string{
			"/tmp/ramalama.conf": "[ramalama]\nimage = \"quay.io/ramalama/ramalama\"\n\n[install]\nbranch = \"main\"\n",
		},
	)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "main", cfg.Branch)
}

func TestLoadMalformedTOML(t *testing.T) {
	withFS(t,
		map[string]string{EnvConfigPath: "/tmp/ramalama.conf"},
		map[string]string{"/tmp/ramalama.conf": "[install\nbranch=\n"},
	)

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}

func TestLoadUnreadableFileIsError(t *testing.T) {
	withFS(t, map[string]string{EnvConfigPath: "/tmp/ramalama.conf"}, nil)
	origReadFile := osReadFile
	osReadFile = func(string) ([]byte, error) {
		return nil, errors.New("permission denied")
	}
	t.Cleanup(func() { osReadFile = origReadFile })

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "permission denied")
}
