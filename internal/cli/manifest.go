package cli

import (
	"fmt"

	"github.com/agentx-labs/npmbridge/internal/lifecycle"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	manifestWrite  bool
	manifestFormat string
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the generated package.json",
	Long: `Print the package.json that would be written for the project. With --write
the file is written to the project root and kept.`,
	Args: cobra.NoArgs,
	RunE: runManifest,
}

func init() {
	manifestCmd.Flags().BoolVar(&manifestWrite, "write", false, "Write package.json to the project root")
	manifestCmd.Flags().StringVar(&manifestFormat, "format", "json", "Output format: json or yaml")
	rootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	p, err := loadProject(cmd)
	if err != nil {
		return err
	}

	doc, err := newBridge(cmd).Manifest(p)
	if err != nil {
		return err
	}
	content, err := doc.Marshal()
	if err != nil {
		return err
	}

	if manifestWrite {
		path, err := p.ManifestPath()
		if err != nil {
			return err
		}
		return lifecycle.WithManifest(path, content, true, func() error {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		})
	}

	switch manifestFormat {
	case "json":
		_, err = cmd.OutOrStdout().Write(content)
		return err
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q: supported formats are json and yaml", manifestFormat)
	}
}
