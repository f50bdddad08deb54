package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewInboundCommand creates the inbound command group.
func NewInboundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inbound",
		Aliases: []string{"in"},
		Short:   "Manage inbound shipments",
		Long:    "Create, submit, ship and track inbound shipments and print their box labels",
	}

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List inbound shipments",
		Long:    "List inbound shipments, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Inbound().List }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "get INBOUND_ID",
		Short: "Get inbound shipment details",
		Long:  "Display detailed information about a specific inbound shipment",
	}, func(client wms.Client) idFunc { return client.Inbound().Get }))

	cmd.AddCommand(createPayloadCommand(CommandConfig{
		Use:   "create",
		Short: "Create an inbound shipment",
		Long:  "Create an inbound shipment from a JSON or YAML payload file",
	}, func(client wms.Client) payloadFunc { return client.Inbound().Create }))

	cmd.AddCommand(createUpdateCommand(CommandConfig{
		Use:   "update INBOUND_ID",
		Short: "Update an inbound shipment",
		Long:  "Update a draft inbound shipment from a JSON or YAML payload file",
	}, func(client wms.Client) idPayloadFunc { return client.Inbound().Update }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "submit INBOUND_ID",
		Short: "Submit an inbound shipment",
		Long:  "Submit a draft inbound shipment to the warehouse",
	}, func(client wms.Client) idFunc { return client.Inbound().Submit }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "ship INBOUND_ID",
		Short: "Mark an inbound shipment as shipped",
		Long:  "Mark a submitted inbound shipment as shipped",
	}, func(client wms.Client) idFunc { return client.Inbound().Ship }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "delete INBOUND_ID",
		Short: "Delete an inbound shipment",
		Long:  "Delete an inbound shipment by id",
	}, func(client wms.Client) idFunc { return client.Inbound().Delete }))

	cmd.AddCommand(createDownloadCommand(CommandConfig{
		Use:   "box-label INBOUND_ID",
		Short: "Download box labels",
		Long:  "Generate the box labels of an inbound shipment and save them to a file",
	}, cobra.ExactArgs(1), func(ctx context.Context, client wms.Client, args []string, payload wms.Payload) (*wms.Binary, error) {
		return client.Inbound().BoxLabel(ctx, args[0], payload)
	}))

	return cmd
}
