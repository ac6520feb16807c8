package tooling

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultNpm is the executable name searched for on PATH.
const DefaultNpm = "npm"

// ErrNpmNotFound is returned when the npm executable cannot be located.
var ErrNpmNotFound = errors.New("npm not found")

// LocateNpm returns the path of the npm executable. A non-empty override is
// used instead of "npm": a path is checked directly, a bare name is searched
// for on PATH.
func LocateNpm(override string) (string, error) {
	name := strings.TrimSpace(override)
	if name == "" {
		name = DefaultNpm
	}

	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w at %s", ErrNpmNotFound, name)
		}
		return name, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not on PATH; install Node.js from https://nodejs.org", ErrNpmNotFound, name)
	}
	return path, nil
}
