package prepare

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"specprep/internal/config"
	"specprep/internal/fsops"
	"specprep/internal/logging"
	"specprep/internal/manifest"
	"specprep/internal/plan"
	"specprep/internal/readme"
)

// ErrSourceNotFound is returned when the service directory does not exist
var ErrSourceNotFound = errors.New("could not find service directory")

// Options selects where services are read from and where they are written to
type Options struct {
	ServicesDir string
	OutBaseDir  string
}

// Result is a computed but not yet executed preparation
type Result struct {
	Service         string
	SourceDirectory string
	TargetDirectory string
	Manifest        manifest.Manifest
	Plan            plan.Plan
}

// ResolveOptions resolves opts against the current working directory
func ResolveOptions(opts Options) (Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Options{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	return ResolveOptionsFrom(cwd, opts), nil
}

// ResolveOptionsFrom fills in default directories and makes both paths
// absolute relative to cwd.
func ResolveOptionsFrom(cwd string, opts Options) Options {
	servicesDir := opts.ServicesDir
	if servicesDir == "" {
		servicesDir = config.DefaultServicesDir
	}
	outBaseDir := opts.OutBaseDir
	if outBaseDir == "" {
		outBaseDir = config.DefaultOutDir
	}

	return Options{
		ServicesDir: absFrom(cwd, servicesDir),
		OutBaseDir:  absFrom(cwd, outBaseDir),
	}
}

func absFrom(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// Preparer turns service folders into publishable packages
type Preparer struct {
	cfg     *config.Config
	console *logging.Console
	log     *zap.Logger
}

// NewPreparer creates a preparer. A nil console or logger discards output.
func NewPreparer(cfg *config.Config, console *logging.Console, log *zap.Logger) *Preparer {
	if console == nil {
		console = logging.NewConsole(io.Discard)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Preparer{cfg: cfg, console: console, log: log}
}

func (p *Preparer) defaults() manifest.Defaults {
	return manifest.Defaults{
		Namespace:     p.cfg.Namespace,
		RepositoryURL: p.cfg.RepositoryURL,
		Licence:       p.cfg.Licence,
	}
}

// Prepare computes everything needed to prepare service without writing
// anything. The source directory is checked before any output-side work.
func (p *Preparer) Prepare(service string, opts Options) (*Result, error) {
	if err := validateServiceName(service); err != nil {
		return nil, err
	}

	resolved, err := ResolveOptions(opts)
	if err != nil {
		return nil, err
	}
	p.log.Debug("resolved options",
		zap.String("servicesDir", resolved.ServicesDir),
		zap.String("outBaseDir", resolved.OutBaseDir))

	sourceDir := filepath.Join(resolved.ServicesDir, service)
	p.console.Printf("Reading from: %s", logging.Color(sourceDir))
	if !fsops.IsDir(sourceDir) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceDir)
	}

	p.console.Printf("Preparing service %q, outputDirectory: %s", service, logging.Color(resolved.OutBaseDir))

	targetDir, ops, err := plan.EnsureTargetDirectory(service, resolved.OutBaseDir)
	if err != nil {
		return nil, err
	}
	p.console.Printf("Writing to: %s", logging.Color(targetDir))

	copyOps, err := plan.CopyFiles(sourceDir, targetDir, p.cfg.Pattern)
	if err != nil {
		return nil, err
	}
	p.log.Debug("matched files", zap.Strings("files", copyOps.Targets()))
	ops = append(ops, copyOps...)

	existing, found, err := manifest.Read(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	p.log.Debug("existing manifest", zap.Bool("found", found))

	mfst := manifest.Merge(service, existing, p.defaults())
	if err := manifest.Validate(mfst); err != nil {
		return nil, err
	}
	data, err := manifest.Encode(mfst)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	p.console.Printf("Prepared package json:\n%s", logging.Color(strings.TrimSuffix(string(data), "\n")))
	ops = append(ops, plan.WriteFile(filepath.Join(targetDir, manifest.FileName), data))

	text := readme.Generate(service, p.defaults())
	ops = append(ops, plan.WriteFile(filepath.Join(targetDir, readme.FileName), []byte(text)))

	return &Result{
		Service:         service,
		SourceDirectory: sourceDir,
		TargetDirectory: targetDir,
		Manifest:        mfst,
		Plan:            ops,
	}, nil
}

// Commit executes a prepared plan and returns the target directory
func (p *Preparer) Commit(res *Result) (string, error) {
	p.console.Printf("Writing...")
	if err := res.Plan.Execute(p.log); err != nil {
		return "", err
	}
	p.console.Printf("Prepared package in: %s", logging.Color(res.TargetDirectory))
	return res.TargetDirectory, nil
}

// Run prepares service and writes the result
func (p *Preparer) Run(service string, opts Options) (string, error) {
	res, err := p.Prepare(service, opts)
	if err != nil {
		return "", err
	}
	return p.Commit(res)
}

func validateServiceName(service string) error {
	if service == "" || service == "." || service == ".." || strings.ContainsAny(service, `/\`) {
		return fmt.Errorf("invalid service name %q", service)
	}
	return nil
}
