package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/careapi/internal/constants"
)

// Config represents the CLI configuration persisted in the config file.
type Config struct {
	API          string `json:"api,omitempty"           yaml:"api,omitempty"`
	Token        string `json:"token,omitempty"         yaml:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty" yaml:"refresh_token,omitempty"`
	Email        string `json:"email,omitempty"         yaml:"email,omitempty"`
	Output       string `json:"output,omitempty"        yaml:"output,omitempty"`
	Timeout      string `json:"timeout,omitempty"       yaml:"timeout,omitempty"`
}

// settableKeys are the keys accepted by "config set" and "config unset".
var settableKeys = map[string]func(*Config, string) error{
	"api": func(c *Config, v string) error {
		c.API = v

		return nil
	},
	"output": func(c *Config, v string) error {
		switch v {
		case "", constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			c.Output = v

			return nil
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutputType, v)
		}
	},
	"timeout": func(c *Config, v string) error {
		if v != "" {
			_, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid timeout %q: %w", v, err)
			}
		}

		c.Timeout = v

		return nil
	},
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the CLI config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.Token != "" {
				config.Token = Masked
			}

			if config.RefreshToken != "" {
				config.RefreshToken = Masked
			}

			return render(cmd, config, propertyHeader, [][]string{
				{"API", valueOrNA(config.API)},
				{"Email", valueOrNA(config.Email)},
				{"Token", valueOrNA(config.Token)},
				{"Refresh Token", valueOrNA(config.RefreshToken)},
				{"Output", valueOrNA(config.Output)},
				{"Timeout", valueOrNA(config.Timeout)},
				{"Config File", valueOrNA(configFilePath())},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Supported keys: api, output, timeout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigKey(cmd, args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigKey(cmd, args[0], "")
		},
	}
}

func updateConfigKey(cmd *cobra.Command, key, value string) error {
	set, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	config := loadConfig()

	err := set(config, value)
	if err != nil {
		return err
	}

	err = saveConfigStruct(config)
	if err != nil {
		return err
	}

	if value == "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", key, value)
	}

	return nil
}

func valueOrNA(value string) string {
	return orNA(&value)
}

// loadConfig reads the configuration merged from the config file, the
// environment and the command-line flags.
func loadConfig() *Config {
	return &Config{
		API:          viper.GetString("api"),
		Token:        viper.GetString("token"),
		RefreshToken: viper.GetString("refresh_token"),
		Email:        viper.GetString("email"),
		Output:       viper.GetString("output"),
		Timeout:      viper.GetString("timeout"),
	}
}

func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName)
}

// saveConfigStruct writes config to the config file and refreshes viper so
// later reads in the same process observe it.
func saveConfigStruct(config *Config) error {
	path := configFilePath()
	if path == "" {
		return constants.ErrNoConfigPath
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	viper.Set("api", config.API)
	viper.Set("token", config.Token)
	viper.Set("refresh_token", config.RefreshToken)
	viper.Set("email", config.Email)
	viper.Set("output", config.Output)
	viper.Set("timeout", config.Timeout)

	return nil
}
