package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/internal/store"
)

// NewWarehouseCommand creates the warehouse command.
func NewWarehouseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "warehouse [WAREHOUSE_ID]",
		Short: "Show or select the warehouse",
		Long: `Show the warehouse sent with every request, or select a new one.

The selection is stored in ~/.wms/state.yml and applies to every later command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := settingsFromViper()
			if err != nil {
				return err
			}

			state, err := store.NewFileStore(settings.StateFile)
			if err != nil {
				return fmt.Errorf("opening state file: %w", err)
			}

			return runWarehouse(cmd, state, args)
		},
	}
}

func runWarehouse(cmd *cobra.Command, state *store.FileStore, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		warehouse, ok := state.Get(constants.StorageKeyWarehouseID)
		if !ok {
			_, _ = fmt.Fprintf(out, "%s (default)\n", constants.DefaultWarehouseID)

			return nil
		}

		_, _ = fmt.Fprintln(out, warehouse)

		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%q: %w", args[0], ErrInvalidID)
	}

	err = state.Set(constants.StorageKeyWarehouseID, strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("saving warehouse: %w", err)
	}

	_, _ = fmt.Fprintf(out, "%s Warehouse set to %d\n", constants.CheckMarkSymbol, id)

	return nil
}
