package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// CommandConfig holds the help text of a generated command.
type CommandConfig struct {
	Use     string
	Short   string
	Long    string
	Aliases []string
}

type (
	fetchFunc     func(ctx context.Context) (*wms.Envelope, error)
	listFunc      func(ctx context.Context, params *wms.QueryParams) (*wms.Envelope, error)
	idFunc        func(ctx context.Context, id string) (*wms.Envelope, error)
	payloadFunc   func(ctx context.Context, payload wms.Payload) (*wms.Envelope, error)
	idPayloadFunc func(ctx context.Context, id string, payload wms.Payload) (*wms.Envelope, error)
	idsFunc       func(ctx context.Context, request *wms.IDsRequest) (*wms.Envelope, error)
	downloadFunc  func(ctx context.Context, client wms.Client, args []string, payload wms.Payload) (*wms.Binary, error)
)

func (c CommandConfig) command() *cobra.Command {
	return &cobra.Command{
		Use:     c.Use,
		Short:   c.Short,
		Long:    c.Long,
		Aliases: c.Aliases,
	}
}

// runEnvelope calls the API and renders the returned envelope.
func runEnvelope(cmd *cobra.Command, call func(ctx context.Context, client wms.Client) (*wms.Envelope, error)) error {
	return withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
		env, err := call(ctx, rt.Client)
		if err != nil {
			return err
		}

		return renderEnvelope(cmd.OutOrStdout(), env, viper.GetString(KeyOutput))
	})
}

// createFetchCommand builds a retrieval command without parameters.
func createFetchCommand(config CommandConfig, resolve func(wms.Client) fetchFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
			return resolve(client)(ctx)
		})
	}

	return cmd
}

// createListCommand builds a retrieval command with filter and paging flags.
func createListCommand(config CommandConfig, resolve func(wms.Client) listFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := queryFromFlags(cmd)
		if err != nil {
			return err
		}

		return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
			return resolve(client)(ctx, params)
		})
	}

	addQueryFlags(cmd)

	return cmd
}

// createIDCommand builds a command acting on a single resource id.
func createIDCommand(config CommandConfig, resolve func(wms.Client) idFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
			return resolve(client)(ctx, args[0])
		})
	}

	return cmd
}

// createPayloadCommand builds a create-style command reading --file.
func createPayloadCommand(config CommandConfig, resolve func(wms.Client) payloadFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		payload, err := payloadFromFlags(cmd)
		if err != nil {
			return err
		}

		return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
			return resolve(client)(ctx, payload)
		})
	}

	cmd.Flags().StringP(flagFile, "f", "", "JSON or YAML payload file")

	return cmd
}

// createUpdateCommand builds an update command taking an id and --file.
func createUpdateCommand(config CommandConfig, resolve func(wms.Client) idPayloadFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		payload, err := payloadFromFlags(cmd)
		if err != nil {
			return err
		}

		return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
			return resolve(client)(ctx, args[0], payload)
		})
	}

	cmd.Flags().StringP(flagFile, "f", "", "JSON or YAML payload file")

	return cmd
}

// createBulkDeleteCommand builds a delete command sending {"ids": [...]}.
func createBulkDeleteCommand(config CommandConfig, resolve func(wms.Client) idsFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}

		return runEnvelope(cmd, func(ctx context.Context, client wms.Client) (*wms.Envelope, error) {
			return resolve(client)(ctx, &wms.IDsRequest{IDs: ids})
		})
	}

	return cmd
}

// createDownloadCommand builds a command saving a binary response. --file is
// optional; --out defaults to the server filename.
func createDownloadCommand(config CommandConfig, args cobra.PositionalArgs, download downloadFunc) *cobra.Command {
	cmd := config.command()
	cmd.Args = args
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var payload wms.Payload

		path, _ := cmd.Flags().GetString(flagFile)
		if path != "" {
			var err error

			payload, err = readPayload(path)
			if err != nil {
				return err
			}
		}

		out, _ := cmd.Flags().GetString(flagOut)

		return withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
			bin, err := download(ctx, rt.Client, args, payload)
			if err != nil {
				return err
			}

			written, err := writeBinary(bin, out)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Saved %s (%d bytes)\n", constants.CheckMarkSymbol, written, len(bin.Data))

			return nil
		})
	}

	cmd.Flags().StringP(flagFile, "f", "", "JSON or YAML payload file")
	cmd.Flags().StringP(flagOut, "o", "", "output path (default: server filename)")

	return cmd
}
