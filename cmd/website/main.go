package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/website/server"
	"github.com/sagarc03/website/settings"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "website",
	Short:   "Web application server",
	Long: `Website serves the application using settings merged from defaults,
config files in the working directory and APP_ prefixed environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		selector, _ := settings.OSEnv{}.LookupEnv(settings.EnvSelector)
		setupLogging(server.ActiveEnvironment(selector))
	},
}

// loadSettings merges the settings for commands that need them.
func loadSettings() (*settings.Settings, error) {
	s, err := settings.Load(settings.Sources{Env: settings.OSEnv{}})
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
