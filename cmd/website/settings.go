package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/sagarc03/website/settings"
)

const redacted = "********"

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the merged settings",
	Long: `Print the settings after merging defaults, config files and environment
variables. The secret key is hidden unless --show-secrets is given.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().StringP("format", "f", "yaml", "output format: yaml, json, toml")
	settingsCmd.Flags().Bool("show-secrets", false, "show secret values")

	rootCmd.AddCommand(settingsCmd)
}

type outputOptions struct {
	format      string
	showSecrets bool
}

func parseOutputOptions(flags *pflag.FlagSet) (outputOptions, error) {
	format, err := flags.GetString("format")
	if err != nil {
		return outputOptions{}, err
	}
	showSecrets, err := flags.GetBool("show-secrets")
	if err != nil {
		return outputOptions{}, err
	}
	return outputOptions{format: format, showSecrets: showSecrets}, nil
}

func runSettings(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	opts, err := parseOutputOptions(cmd.Flags())
	if err != nil {
		return err
	}

	return writeSettings(cmd.OutOrStdout(), *s, opts)
}

func writeSettings(w io.Writer, s settings.Settings, opts outputOptions) error {
	out := s.Clone()
	if !opts.showSecrets && out.SecretKey != nil {
		hidden := redacted
		out.SecretKey = &hidden
	}

	switch opts.format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "toml":
		return toml.NewEncoder(w).Encode(out)
	default:
		return fmt.Errorf("unknown format %q (valid formats: yaml, json, toml)", opts.format)
	}
}
