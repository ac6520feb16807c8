package cli

import (
	"fmt"

	"github.com/agentx-labs/npmbridge/internal/project"
	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Resolve project dependencies and run npm install",
	Long: `Run the project's dependency-resolution step. npm install runs once after
resolution completes, however often the step re-enters itself.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	resolve := newBridge(cmd).Hook(project.ResolveDeclared)
	res, err := resolve(cmd.Context(), p)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Resolved %d npm dependencies.\n", len(res.Dependencies))
	for _, d := range res.Dependencies {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", d)
	}
	return nil
}
