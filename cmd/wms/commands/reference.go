package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewReferenceCommand creates the reference data command group.
func NewReferenceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reference",
		Aliases: []string{"ref"},
		Short:   "List reference data",
		Long:    "List customs types, currencies, countries and arrival methods",
	}

	cmd.AddCommand(createFetchCommand(CommandConfig{
		Use:   "customs-types",
		Short: "List customs types",
		Long:  "List the customs declaration types accepted by the warehouse",
	}, func(client wms.Client) fetchFunc { return client.Reference().CustomsTypes }))

	cmd.AddCommand(createFetchCommand(CommandConfig{
		Use:   "currencies",
		Short: "List currencies",
		Long:  "List the currencies accepted by the warehouse",
	}, func(client wms.Client) fetchFunc { return client.Reference().Currencies }))

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:   "countries",
		Short: "List countries",
		Long:  "List countries, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Reference().Countries }))

	cmd.AddCommand(createListCommand(CommandConfig{
		Use:   "arrival-methods",
		Short: "List arrival methods",
		Long:  "List inbound arrival methods, optionally filtered with --filter key=value",
	}, func(client wms.Client) listFunc { return client.Reference().ArrivalMethods }))

	return cmd
}
