package cli

import (
	"fmt"

	"github.com/agentx-labs/npmbridge/internal/branding"
	"github.com/spf13/cobra"
)

var npmCmd = &cobra.Command{
	Use:   "npm [args...]",
	Short: "Run npm against the generated package.json",
	Long: `Write package.json from ` + branding.ProjectFile() + `, run npm with the given arguments
in the project root, and remove package.json afterwards unless persistence is on.

Flags after the first argument are passed to npm unchanged.`,
	Example: `  ` + branding.CLIName() + ` npm install
  ` + branding.CLIName() + ` npm run build --if-present
  ` + branding.CLIName() + ` --persist npm ls --depth=0`,
	Args: cobra.ArbitraryArgs,
	RunE: runNpm,
}

func init() {
	npmCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(npmCmd)
}

func runNpm(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s bridges %s and npm. Dependencies declared under npm.dependencies\n", branding.DisplayName(), branding.ProjectFile())
		fmt.Fprintf(cmd.OutOrStdout(), "are written to a temporary package.json before npm runs.\n\n")
		return cmd.Help()
	}

	p, err := loadProject(cmd)
	if err != nil {
		return err
	}
	return newBridge(cmd).Run(cmd.Context(), p, args)
}
