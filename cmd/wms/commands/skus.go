package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewSKUsCommand creates the skus command group.
func NewSKUsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "skus",
		Aliases: []string{"sku"},
		Short:   "Manage SKUs",
		Long:    "List, view, update and delete stock keeping units",
	}

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List SKUs",
		Long:    "List SKUs, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.SKUs().List }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "get SKU_ID",
		Short: "Get SKU details",
		Long:  "Display detailed information about a specific SKU",
	}, func(client wms.Client) idFunc { return client.SKUs().Get }))

	cmd.AddCommand(createUpdateCommand(CommandConfig{
		Use:   "update SKU_ID",
		Short: "Update a SKU",
		Long:  "Update an existing SKU from a JSON or YAML payload file",
	}, func(client wms.Client) idPayloadFunc { return client.SKUs().Update }))

	cmd.AddCommand(createBulkDeleteCommand(CommandConfig{
		Use:   "delete SKU_ID...",
		Short: "Delete SKUs",
		Long:  "Delete one or more SKUs by id",
	}, func(client wms.Client) idsFunc { return client.SKUs().Delete }))

	return cmd
}
