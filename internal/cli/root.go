package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agentx-labs/npmbridge/internal/branding"
	"github.com/agentx-labs/npmbridge/internal/bridge"
	"github.com/agentx-labs/npmbridge/internal/config"
	"github.com/agentx-labs/npmbridge/internal/lifecycle"
	"github.com/agentx-labs/npmbridge/internal/project"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	projectDir string
	verbose    bool
	persist    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` writes a package.json synthesized from the project's ` + branding.ProjectFile() + `,
runs npm against it, and removes it again unless persistence is enabled.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := resolveLevel(verbose, config.Get(config.KeyLogLevel))
		cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", ".", "Project directory containing "+branding.ProjectFile())
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&persist, "persist", false, "Keep the generated package.json after the command")
}

// Execute runs the root command with build info injected via ldflags.
// Manifests still awaiting removal are deleted before it returns, and on
// SIGINT/SIGTERM.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	lifecycle.HandleSignals(ctx)
	defer func() {
		for _, path := range lifecycle.Cleanup() {
			fmt.Fprintf(os.Stderr, "could not remove %s\n", path)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadProject loads the project selected by --project and logs any
// deprecated keys it uses.
func loadProject(cmd *cobra.Command) (*project.Project, error) {
	p, err := project.Load(projectDir)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(cmd.Context())
	for _, w := range project.DeprecationWarnings(p) {
		logger.Warn(w)
	}
	return p, nil
}

// newBridge builds a Bridge from flags and user configuration.
func newBridge(cmd *cobra.Command) *bridge.Bridge {
	return bridge.New(bridge.Options{
		Npm:     config.Get(config.KeyNpm),
		Persist: persist || config.GetBool(config.KeyPersist),
		Logger:  loggerFromContext(cmd.Context()),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
}
