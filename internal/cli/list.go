package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"specprep/internal/logging"
	"specprep/internal/prepare"
	"specprep/internal/service"
)

var listServiceDir string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List services",
	Long: `List the services found in the services directory.

Examples:
  specprep list
  specprep list -d specs`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listServiceDir, "service-dir", "d", "", "Services directory to scan")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	opts, err := prepare.ResolveOptions(prepare.Options{
		ServicesDir: firstNonEmpty(listServiceDir, cfg.ServicesDir),
	})
	if err != nil {
		return err
	}

	services, err := service.List(opts.ServicesDir, cfg.Pattern)
	if err != nil {
		return fmt.Errorf("failed to list services: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(services) == 0 {
		fmt.Fprintf(out, "No services found in %s\n", opts.ServicesDir)
		return nil
	}

	fmt.Fprintf(out, "Services in %s:\n\n", logging.Color(opts.ServicesDir))
	for _, svc := range services {
		marker := "○"
		if svc.HasManifest {
			marker = "●"
		}
		fmt.Fprintf(out, "  %s %s (%d file(s))\n", marker, svc.Name, len(svc.Files))
		if svc.Title != "" {
			title := svc.Title
			if svc.APIVersion != "" {
				title += " " + svc.APIVersion
			}
			fmt.Fprintf(out, "    %s\n", title)
		}
	}

	return nil
}
