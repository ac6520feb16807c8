//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeNpm records its arguments and a copy of the package.json it saw, then
// exits with $NPM_EXIT. A "node_modules" directory is created on install so
// tests can check that npm ran in the project root.
const fakeNpm = `#!/bin/sh
echo "$*" >> "$NPM_LOG"
if [ -f package.json ]; then
  cp package.json "$NPM_SEEN"
fi
if [ "$1" = "install" ]; then
  mkdir -p node_modules
fi
exit ${NPM_EXIT:-0}
`

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME for the user config file
	NpmBin     string // fake npm executable
	NpmLog     string // one line per npm invocation
	NpmSeen    string // last package.json npm saw
	ProjectDir string // a mock project directory
}

// setupTestEnv creates isolated temp directories and a fake npm so no test
// touches the real registry. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake npm is a shell script")
	}

	binDir := t.TempDir()
	env := &testEnv{
		HomeDir:    t.TempDir(),
		NpmBin:     filepath.Join(binDir, "npm"),
		NpmLog:     filepath.Join(binDir, "calls.log"),
		NpmSeen:    filepath.Join(binDir, "seen.json"),
		ProjectDir: t.TempDir(),
	}
	writeFile(t, env.NpmBin, fakeNpm)
	if err := os.Chmod(env.NpmBin, 0755); err != nil {
		t.Fatalf("chmod fake npm: %v", err)
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("NPM_LOG", env.NpmLog)
	t.Setenv("NPM_SEEN", env.NpmSeen)

	return env
}

// writeProject writes project.yaml into the project directory.
func writeProject(t *testing.T, env *testEnv, content string) {
	t.Helper()
	writeFile(t, filepath.Join(env.ProjectDir, "project.yaml"), content)
}

// npmCalls returns the argument lines recorded by the fake npm.
func npmCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.NpmLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading npm log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
