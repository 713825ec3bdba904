package files

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv names the environment variable that overrides the workspace root.
const HomeEnv = "KOSAKATA_HOME"

// ResolveBasePath determines the workspace root that relative input and output
// names are resolved against. KOSAKATA_HOME wins when set; otherwise the
// current working directory is used.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			path, err := normalizePath(override)
			if err != nil {
				return "", err
			}
			return path, nil
		}
	}

	return os.Getwd()
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
