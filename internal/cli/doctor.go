package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/agentx-labs/npmbridge/internal/bridge"
	"github.com/agentx-labs/npmbridge/internal/config"
	"github.com/agentx-labs/npmbridge/internal/project"
	"github.com/agentx-labs/npmbridge/internal/tooling"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check npm and the project configuration",
	Long:  `Run diagnostic checks on the npm installation and the project in --project.`,
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failures := 0

	fmt.Fprintln(out, "Runtime check:")
	if !checkNpm(cmd, out) {
		failures++
	}

	fmt.Fprintln(out, "Project check:")
	if !checkProject(cmd, out) {
		failures++
	}

	if failures > 0 {
		return fmt.Errorf("doctor found %d problem(s)", failures)
	}
	return nil
}

func checkNpm(cmd *cobra.Command, out io.Writer) bool {
	bin, err := tooling.LocateNpm(config.Get(config.KeyNpm))
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %v\n", err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] npm found at %s\n", bin)

	version, err := tooling.NpmVersion(cmd.Context(), bin)
	if err != nil {
		fmt.Fprintf(out, "  [WARN] could not determine npm version: %v\n", err)
		return true
	}
	ok, err := tooling.MeetsMinimum(version, tooling.MinNpmVersion)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [WARN] unrecognized npm version %q\n", version)
	case !ok:
		fmt.Fprintf(out, "  [FAIL] npm %s is older than %s\n", version, tooling.MinNpmVersion)
		return false
	default:
		fmt.Fprintf(out, "  [ OK ] npm %s\n", version)
	}
	return true
}

func checkProject(cmd *cobra.Command, out io.Writer) bool {
	p, err := project.Load(projectDir)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s is valid\n", project.ConfigPath(p.Dir))

	for _, w := range project.DeprecationWarnings(p) {
		fmt.Fprintf(out, "  [WARN] %s\n", w)
	}

	b := newBridge(cmd)
	if _, err := b.Manifest(p); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintln(out, "  [ OK ] generated package.json passes validation")

	if err := b.CheckEnvironment(p); err != nil {
		if errors.Is(err, bridge.ErrManifestConflict) {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return false
		}
		if !errors.Is(err, tooling.ErrNpmNotFound) {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return false
		}
	}

	path, _ := p.ManifestPath()
	fmt.Fprintf(out, "  [ OK ] package.json will be written to %s (persist: %t)\n", path, b.Persist(p))
	return true
}
