package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"specprep/internal/config"
	"specprep/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "specprep",
	Short: "Prepare service specifications for publishing",
	Long: `specprep prepares folders of OpenAPI specifications for publishing
as installable packages.

Each service folder under the services directory is copied into the
output directory together with a generated package.json and README.md.

Settings are read from specprep.toml and .env in the working directory
and from SPECPREP_* environment variables; flags take precedence.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// setup loads the configuration and the debug logger shared by all commands
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log.Debug("loaded config",
		zap.String("configPath", cfg.ConfigPath),
		zap.String("servicesDir", cfg.ServicesDir),
		zap.String("outDir", cfg.OutDir),
		zap.String("pattern", cfg.Pattern))

	return cfg, log, nil
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
