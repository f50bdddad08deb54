package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/wms-client/internal/constants"
)

// Configuration keys shared with the root command's flag bindings.
const (
	KeyAPI         = "api"
	KeyToken       = "token"
	KeyWarehouse   = "warehouse"
	KeyOutput      = "output"
	KeyVerbose     = "verbose"
	KeyNoColor     = "no_color"
	KeyNATSURL     = "nats_url"
	KeyNATSSubject = "nats_subject"
	KeyTimeout     = "timeout"
	KeyStateFile   = "state_file"

	configDirName  = ".wms"
	configFileName = "config.yml"
	stateFileName  = "state.yml"
)

// Config represents the CLI configuration.
type Config struct {
	API         string        `json:"api,omitempty"          yaml:"api,omitempty"`
	Warehouse   string        `json:"warehouse,omitempty"    yaml:"warehouse,omitempty"`
	Output      string        `json:"output"                 yaml:"output"`
	NoColor     bool          `json:"no_color"               yaml:"no_color"`
	NATSURL     string        `json:"nats_url,omitempty"     yaml:"nats_url,omitempty"`
	NATSSubject string        `json:"nats_subject,omitempty" yaml:"nats_subject,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty"      yaml:"timeout,omitempty"`
	StateFile   string        `json:"state_file,omitempty"   yaml:"state_file,omitempty"`
}

// ConfigDir returns ~/.wms.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// loadConfig reads the persisted settings from viper. Flags and WMS_
// environment variables have already been merged in by viper.
func loadConfig() *Config {
	return &Config{
		API:         viper.GetString(KeyAPI),
		Warehouse:   viper.GetString(KeyWarehouse),
		Output:      viper.GetString(KeyOutput),
		NoColor:     viper.GetBool(KeyNoColor),
		NATSURL:     viper.GetString(KeyNATSURL),
		NATSSubject: viper.GetString(KeyNATSSubject),
		Timeout:     viper.GetDuration(KeyTimeout),
		StateFile:   viper.GetString(KeyStateFile),
	}
}

// saveConfigStruct writes config to the file viper loaded, or to
// ~/.wms/config.yml when none was found.
func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configDir, err := ConfigDir()
		if err != nil {
			return err
		}

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, configFileName)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setConfigValue applies one `config set` assignment.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case KeyAPI:
		config.API = value
	case KeyWarehouse:
		config.Warehouse = value
	case KeyOutput:
		config.Output = value
	case KeyNoColor, "no-color":
		noColor, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.NoColor = noColor
	case KeyNATSURL, "nats-url":
		config.NATSURL = value
	case KeyNATSSubject, "nats-subject":
		config.NATSSubject = value
	case KeyTimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.Timeout = timeout
	case KeyStateFile, "state-file":
		config.StateFile = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the WMS CLI configuration stored in ~/.wms/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration after flags and environment variables",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			out := cmd.OutOrStdout()

			renderer := &OutputRenderer[*Config]{
				RenderJSON: func(data *Config) error { return StandardJSONRenderer(out, data) },
				RenderYAML: func(data *Config) error { return StandardYAMLRenderer(out, data) },
				RenderTable: func(data *Config) error {
					table := tablewriter.NewWriter(out)
					table.Header("Property", "Value")

					_ = table.Append("API", valueOrNA(data.API))
					_ = table.Append("Warehouse", valueOrNA(data.Warehouse))
					_ = table.Append("Output", valueOrNA(data.Output))
					_ = table.Append("No Color", strconv.FormatBool(data.NoColor))
					_ = table.Append("NATS URL", valueOrNA(data.NATSURL))
					_ = table.Append("NATS Subject", valueOrNA(data.NATSSubject))
					_ = table.Append("Timeout", data.Timeout.String())
					_ = table.Append("State File", valueOrNA(data.StateFile))

					return renderTable(table)
				},
			}

			return renderer.Render(config, config.Output)
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Keys: api, warehouse, output, no_color, nats_url, nats_subject, timeout, state_file`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s set to %s\n", constants.CheckMarkSymbol, args[0], args[1])

			return nil
		},
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
