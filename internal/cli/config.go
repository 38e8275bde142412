package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"specprep/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage specprep configuration",
	Long:  `View and create the specprep configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to " + config.ConfigFileName,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  config_file:    %s\n", cfg.ConfigPath)
	fmt.Fprintf(out, "  services_dir:   %s\n", cfg.ServicesDir)
	fmt.Fprintf(out, "  out_dir:        %s\n", cfg.OutDir)
	fmt.Fprintf(out, "  namespace:      %s\n", cfg.Namespace)
	fmt.Fprintf(out, "  repository_url: %s\n", cfg.RepositoryURL)
	fmt.Fprintf(out, "  licence:        %s\n", cfg.Licence)
	fmt.Fprintf(out, "  pattern:        %s\n", cfg.Pattern)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cfg.ConfigPath)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists", cfg.ConfigPath)
		}
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.ConfigPath)
	return nil
}
