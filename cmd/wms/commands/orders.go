package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order", "o"},
		Short:   "Manage outbound orders",
		Long:    "Create, submit, intercept and track outbound orders",
	}

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List orders",
		Long:    "List outbound orders, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Orders().List }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "get ORDER_ID",
		Short: "Get order details",
		Long:  "Display detailed information about a specific order",
	}, func(client wms.Client) idFunc { return client.Orders().Get }))

	cmd.AddCommand(createPayloadCommand(CommandConfig{
		Use:   "create",
		Short: "Create an order",
		Long:  "Create an outbound order from a JSON or YAML payload file",
	}, func(client wms.Client) payloadFunc { return client.Orders().Create }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "submit ORDER_ID",
		Short: "Submit an order",
		Long:  "Submit a draft order for fulfilment",
	}, func(client wms.Client) idFunc { return client.Orders().Submit }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "delete ORDER_ID",
		Short: "Delete an order",
		Long:  "Delete an order by id",
	}, func(client wms.Client) idFunc { return client.Orders().Delete }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "intercept ORDER_ID",
		Short: "Intercept an order",
		Long:  "Request interception of a submitted order before it ships",
	}, func(client wms.Client) idFunc { return client.Orders().Intercept }))

	cmd.AddCommand(createIDCommand(CommandConfig{
		Use:   "cancel-intercept ORDER_ID",
		Short: "Cancel an order interception",
		Long:  "Withdraw a pending interception request for an order",
	}, func(client wms.Client) idFunc { return client.Orders().CancelIntercept }))

	return cmd
}
