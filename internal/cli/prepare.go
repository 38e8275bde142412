package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"specprep/internal/config"
	"specprep/internal/logging"
	"specprep/internal/manifest"
	"specprep/internal/plan"
	"specprep/internal/prepare"
	"specprep/internal/tui"
)

var (
	prepareOutDir      string
	prepareServiceDir  string
	preparePattern     string
	prepareDryRun      bool
	prepareInteractive bool
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <service>",
	Short: "Prepare a service for publishing",
	Long: `Prepare a service for publishing.

Copies the YAML specification files of <service> into
<out-dir>/<service>, merges or creates its package.json and
generates a README.md.

Examples:
  specprep prepare petstore
  specprep prepare petstore -o dist -d specs
  specprep prepare petstore --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&prepareOutDir, "out-dir", "o", "", fmt.Sprintf("Output directory (default: %s)", config.DefaultOutDir))
	prepareCmd.Flags().StringVarP(&prepareServiceDir, "service-dir", "d", "", fmt.Sprintf("Services directory where to look for folder <service> (default: ./%s)", config.DefaultServicesDir))
	prepareCmd.Flags().StringVarP(&preparePattern, "pattern", "p", "", fmt.Sprintf("Glob selecting the files to copy (default: %s)", config.DefaultPattern))
	prepareCmd.Flags().BoolVar(&prepareDryRun, "dry-run", false, "Print the plan without writing anything")
	prepareCmd.Flags().BoolVarP(&prepareInteractive, "interactive", "i", false, "Review the plan before writing")
}

// planView is the dry-run rendering of a preparation
type planView struct {
	Service  string            `yaml:"service"`
	Source   string            `yaml:"source"`
	Target   string            `yaml:"target"`
	Ops      plan.Plan         `yaml:"ops"`
	Manifest manifest.Manifest `yaml:"manifest"`
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if preparePattern != "" {
		cfg.Pattern = preparePattern
	}
	opts := prepare.Options{
		ServicesDir: firstNonEmpty(prepareServiceDir, cfg.ServicesDir),
		OutBaseDir:  firstNonEmpty(prepareOutDir, cfg.OutDir),
	}

	out := cmd.OutOrStdout()
	console := logging.NewConsole(out)
	if prepareDryRun {
		// Keep stdout parseable as YAML.
		console = logging.NewConsole(cmd.ErrOrStderr())
	}
	preparer := prepare.NewPreparer(cfg, console, log)

	service := args[0]
	res, err := preparer.Prepare(service, opts)
	if err != nil {
		return err
	}

	if prepareDryRun {
		return printPlan(out, res)
	}

	if prepareInteractive {
		ok, err := confirmPlan(service, res.TargetDirectory, res.Plan)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	if _, err := preparer.Commit(res); err != nil {
		return fmt.Errorf("failed to prepare %s: %w", service, err)
	}
	return nil
}

// confirmPlan asks the user to accept the plan before anything is written
var confirmPlan = tui.Confirm

func printPlan(w io.Writer, res *prepare.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(planView{
		Service:  res.Service,
		Source:   res.SourceDirectory,
		Target:   res.TargetDirectory,
		Ops:      res.Plan,
		Manifest: res.Manifest,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
