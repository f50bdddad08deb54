package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "Manage products",
		Long:    "List, view, create, update and delete products and print product labels",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsCreateCommand())
	cmd.AddCommand(newProductsUpdateCommand())
	cmd.AddCommand(newProductsDeleteCommand())
	cmd.AddCommand(newProductsLabelsCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	return createListCommand(CommandConfig{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List products",
		Long:    "List products, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Products().List })
}

func newProductsGetCommand() *cobra.Command {
	return createIDCommand(CommandConfig{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Display detailed information about a specific product",
	}, func(client wms.Client) idFunc { return client.Products().Get })
}

func newProductsCreateCommand() *cobra.Command {
	return createPayloadCommand(CommandConfig{
		Use:   "create",
		Short: "Create a product",
		Long:  "Create a product from a JSON or YAML payload file",
	}, func(client wms.Client) payloadFunc { return client.Products().Create })
}

func newProductsUpdateCommand() *cobra.Command {
	return createUpdateCommand(CommandConfig{
		Use:   "update PRODUCT_ID",
		Short: "Update a product",
		Long:  "Update an existing product from a JSON or YAML payload file",
	}, func(client wms.Client) idPayloadFunc { return client.Products().Update })
}

func newProductsDeleteCommand() *cobra.Command {
	return createBulkDeleteCommand(CommandConfig{
		Use:   "delete PRODUCT_ID...",
		Short: "Delete products",
		Long:  "Delete one or more products by id",
	}, func(client wms.Client) idsFunc { return client.Products().Delete })
}

func newProductsLabelsCommand() *cobra.Command {
	return createDownloadCommand(CommandConfig{
		Use:   "labels",
		Short: "Generate product labels",
		Long:  "Generate printable product labels and save them to a file",
	}, cobra.NoArgs, func(ctx context.Context, client wms.Client, args []string, payload wms.Payload) (*wms.Binary, error) {
		return client.Products().GenerateLabels(ctx, payload)
	})
}
