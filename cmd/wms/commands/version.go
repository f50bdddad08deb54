package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// VersionInfo is the rendered form of the build metadata.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the WMS CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			renderer := &OutputRenderer[VersionInfo]{
				RenderJSON: func(data VersionInfo) error { return StandardJSONRenderer(out, data) },
				RenderYAML: func(data VersionInfo) error { return StandardYAMLRenderer(out, data) },
				RenderTable: func(data VersionInfo) error {
					table := tablewriter.NewWriter(out)
					table.Header("Property", "Value")
					_ = table.Append("Version", data.Version)
					_ = table.Append("Commit", data.Commit)
					_ = table.Append("Built", data.Built)

					return renderTable(table)
				},
			}

			return renderer.Render(VersionInfo{Version: version, Commit: commit, Built: date}, viper.GetString(KeyOutput))
		},
	}
}
