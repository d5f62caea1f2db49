package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ResolveEnvFile finds the dotenv file to load. An explicit path, or one set
// through FAKEGDATE_ENV_FILE, must exist. Otherwise the first existing
// default location is used, and "" means there is nothing to load.
func ResolveEnvFile(explicit string) (string, error) {
	candidates, required := envFileCandidates(explicit)

	tried := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		path := expandPath(candidate)
		tried = append(tried, path)
		if isEnvFile(path) {
			return path, nil
		}
	}

	if required {
		return "", fmt.Errorf("env file not found; tried: %s", strings.Join(tried, ", "))
	}
	return "", nil
}

// envFileCandidates lists the paths to try and whether one of them must exist.
func envFileCandidates(explicit string) ([]string, bool) {
	if explicit != "" {
		return []string{explicit}, true
	}
	if env := os.Getenv(EnvFileVar); env != "" {
		return []string{env}, true
	}
	return defaultPaths(), false
}

func defaultPaths() []string {
	paths := []string{"~/.config/fakegdate/env"}

	switch runtime.GOOS {
	case "darwin":
		paths = append(paths, "~/Library/Application Support/fakegdate/env")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			paths = append(paths, filepath.Join(appData, "fakegdate", "env"))
		}
	}

	return paths
}

// expandPath expands environment references, then a leading "~" or "~/".
// Other users' homes ("~bob") are left as written.
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func isEnvFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
