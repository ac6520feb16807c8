package tooling

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNpmVersion is the oldest npm release known to work.
const MinNpmVersion = "7.0.0"

// NpmVersion runs `<bin> --version` and returns the trimmed output.
func NpmVersion(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// MeetsMinimum reports whether version is at least minimum.
func MeetsMinimum(version, minimum string) (bool, error) {
	cmp, err := CompareVersions(version, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
