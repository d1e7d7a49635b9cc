// Package main implements the catalog CLI: it inspects and lints field
// tables derived from StructureDefinitions and checks codes against value
// sets.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gofhir/catalog/pkg/logger"
)

const version = "0.1.0"

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// errFindings makes the process exit with status 1 after the report has
// already been printed.
var errFindings = errors.New("findings reported")

// Config holds CLI configuration. Every field can come from a flag, a
// CATALOG_* environment variable or the config file.
type Config struct {
	Output      OutputFormat `mapstructure:"output"`
	LogLevel    string       `mapstructure:"log-level"`
	Quiet       bool         `mapstructure:"quiet"`
	Terminology []string     `mapstructure:"terminology"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cfg := &Config{}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Inspect field tables and check codes for the record catalogue",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.StringP("output", "o", string(OutputText), "output format: text, json")
	flags.String("log-level", "warn", "log level: debug, info, warn, error, none")
	flags.BoolP("quiet", "q", false, "only show errors and warnings")
	flags.StringSlice("terminology", nil, "ValueSet/CodeSystem files or package directories to load")

	root.AddCommand(newSchemaCmd(cfg), newLintCmd(cfg), newCodeCmd(cfg))
	return root
}

// loadConfig resolves cfg from flags, environment and the optional config
// file, in that order of precedence.
func loadConfig(v *viper.Viper, cmd *cobra.Command, cfg *Config) error {
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	switch OutputFormat(strings.ToLower(string(cfg.Output))) {
	case OutputJSON:
		cfg.Output = OutputJSON
	case OutputText, "":
		cfg.Output = OutputText
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.NewConsole(cmd.ErrOrStderr(), level))
	return nil
}
