package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the warehouse",
		Long:  "Authenticate with the warehouse API and store the session token in ~/.wms/state.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			credentials, err := promptCredentials(cmd.InOrStdin(), cmd.ErrOrStderr(), username, password)
			if err != nil {
				return err
			}

			return withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				_, err := rt.Client.Auth().Login(ctx, credentials)
				if err != nil {
					return fmt.Errorf("login failed: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Logged in as %s\n", constants.CheckMarkSymbol, credentials.Username)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// promptCredentials fills in whatever the flags left empty.
func promptCredentials(in io.Reader, prompt io.Writer, username, password string) (*wms.Credentials, error) {
	reader := bufio.NewReader(in)

	if username == "" {
		_, _ = fmt.Fprint(prompt, "Username: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, constants.ErrUsernameRequired
		}

		username = strings.TrimSpace(line)
	}

	if username == "" {
		return nil, constants.ErrUsernameRequired
	}

	if password == "" {
		_, _ = fmt.Fprint(prompt, "Password: ")

		if term.IsTerminal(int(syscall.Stdin)) && in == os.Stdin {
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			_, _ = fmt.Fprintln(prompt)

			if err != nil {
				return nil, fmt.Errorf("failed to read password: %w", err)
			}

			password = string(bytePassword)
		} else {
			line, _ := reader.ReadString('\n')
			password = strings.TrimRight(line, "\r\n")
		}
	}

	return &wms.Credentials{Username: username, Password: password}, nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the warehouse",
		Long:  "End the session on the server and remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd, func(ctx context.Context, rt *Runtime) error {
				if _, ok := rt.State.Get(constants.StorageKeyToken); !ok && rt.Session().Token() == "" {
					return constants.ErrNotAuthenticated
				}

				_, err := rt.Client.Auth().Logout(ctx)
				if err != nil {
					return fmt.Errorf("logout failed: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Logged out\n", constants.CheckMarkSymbol)

				return nil
			})
		},
	}
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand() *cobra.Command {
	return createPayloadCommand(CommandConfig{
		Use:   "register",
		Short: "Register a new account",
		Long:  "Register a new warehouse account from a JSON or YAML payload file",
	}, func(client wms.Client) payloadFunc { return client.Auth().Register })
}
