package tooling

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFakeNpm(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on Windows")
	}
	path := filepath.Join(dir, "npm")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLocateNpm_OnPath(t *testing.T) {
	dir := t.TempDir()
	want := writeFakeNpm(t, dir, "exit 0\n")
	t.Setenv("PATH", dir)

	got, err := LocateNpm("")
	if err != nil {
		t.Fatalf("LocateNpm error: %v", err)
	}
	if got != want {
		t.Errorf("LocateNpm() = %q, want %q", got, want)
	}
}

func TestLocateNpm_NotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := LocateNpm("")
	if !errors.Is(err, ErrNpmNotFound) {
		t.Fatalf("expected ErrNpmNotFound, got %v", err)
	}
}

func TestLocateNpm_OverridePath(t *testing.T) {
	dir := t.TempDir()
	bin := writeFakeNpm(t, dir, "exit 0\n")
	t.Setenv("PATH", t.TempDir())

	got, err := LocateNpm(bin)
	if err != nil {
		t.Fatalf("LocateNpm error: %v", err)
	}
	if got != bin {
		t.Errorf("LocateNpm() = %q, want %q", got, bin)
	}

	if _, err := LocateNpm(filepath.Join(dir, "missing")); !errors.Is(err, ErrNpmNotFound) {
		t.Errorf("expected ErrNpmNotFound for missing override, got %v", err)
	}
	if _, err := LocateNpm(dir + string(filepath.Separator)); !errors.Is(err, ErrNpmNotFound) {
		t.Errorf("expected ErrNpmNotFound for directory override, got %v", err)
	}
}

func TestNpmVersion(t *testing.T) {
	bin := writeFakeNpm(t, t.TempDir(), "echo 10.2.4\n")

	got, err := NpmVersion(context.Background(), bin)
	if err != nil {
		t.Fatalf("NpmVersion error: %v", err)
	}
	if got != "10.2.4" {
		t.Errorf("NpmVersion() = %q, want 10.2.4", got)
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "2.0.0", -1},
		{"v2.0.0", "2.0.0", 0},
		{"10.2.4", "7.0.0", 1},
		{"7.0.0-rc.1", "7.0.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got, err := CompareVersions(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CompareVersions error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareVersions_Invalid(t *testing.T) {
	if _, err := CompareVersions("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid version")
	}
	if _, err := CompareVersions("1.0.0", ""); err == nil {
		t.Error("expected error for empty version")
	}
}

func TestMeetsMinimum(t *testing.T) {
	ok, err := MeetsMinimum("10.2.4", MinNpmVersion)
	if err != nil || !ok {
		t.Errorf("MeetsMinimum(10.2.4) = %v, %v; want true", ok, err)
	}
	ok, err = MeetsMinimum("6.14.18", MinNpmVersion)
	if err != nil || ok {
		t.Errorf("MeetsMinimum(6.14.18) = %v, %v; want false", ok, err)
	}
}
