package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewStocksCommand creates the stocks command group.
func NewStocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stocks",
		Aliases: []string{"stock"},
		Short:   "View stock levels",
		Long:    "View stock levels and stock movement logs",
	}

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stock levels",
		Long:    "List stock levels, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Stocks().List }))

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:   "logs",
		Short: "List stock movements",
		Long:  "List stock movement logs, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Stocks().Logs }))

	return cmd
}
