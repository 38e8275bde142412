package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ConfigFileName = "specprep.toml"
	EnvFileName    = ".env"
	EnvPrefix      = "SPECPREP_"

	DefaultServicesDir   = "services"
	DefaultOutDir        = "prepared"
	DefaultNamespace     = "@unmock"
	DefaultRepositoryURL = "https://github.com/unmock/unmock-openapi-specs"
	DefaultLicence       = "MIT"
	DefaultPattern       = "*.{yml,yaml}"
)

// ConfigFile represents the TOML config file structure. The same keys can
// be set through SPECPREP_* environment variables.
type ConfigFile struct {
	ServicesDir   string `toml:"services_dir,omitempty" env:"SERVICES_DIR"`
	OutDir        string `toml:"out_dir,omitempty" env:"OUT_DIR"`
	Namespace     string `toml:"namespace,omitempty" env:"NAMESPACE"`
	RepositoryURL string `toml:"repository_url,omitempty" env:"REPOSITORY_URL"`
	Licence       string `toml:"licence,omitempty" env:"LICENCE"`
	Pattern       string `toml:"pattern,omitempty" env:"PATTERN"`
}

// Config holds the runtime configuration
type Config struct {
	ConfigPath string
	EnvPath    string

	ServicesDir   string
	OutDir        string
	Namespace     string
	RepositoryURL string
	Licence       string
	Pattern       string
}

// Defaults returns a configuration holding only built-in values, rooted at dir
func Defaults(dir string) *Config {
	return &Config{
		ConfigPath:    filepath.Join(dir, ConfigFileName),
		EnvPath:       filepath.Join(dir, EnvFileName),
		ServicesDir:   DefaultServicesDir,
		OutDir:        DefaultOutDir,
		Namespace:     DefaultNamespace,
		RepositoryURL: DefaultRepositoryURL,
		Licence:       DefaultLicence,
		Pattern:       DefaultPattern,
	}
}

// DefaultConfig loads the configuration for the current working directory
func DefaultConfig() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return Load(cwd, os.Environ())
}

// Load layers the config file, the .env file and environ on top of the
// built-in defaults. Later layers win.
func Load(dir string, environ []string) (*Config, error) {
	cfg := Defaults(dir)

	if err := cfg.loadFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.ConfigPath, err)
	}

	vars, err := godotenv.Read(cfg.EnvPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", cfg.EnvPath, err)
		}
		vars = make(map[string]string)
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	var fromEnv ConfigFile
	if err := env.ParseWithOptions(&fromEnv, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.apply(fromEnv)

	return cfg, nil
}

// loadFile reads the TOML config file, keeping defaults for unset keys
func (c *Config) loadFile() error {
	var cf ConfigFile
	if _, err := toml.DecodeFile(c.ConfigPath, &cf); err != nil {
		return err
	}
	c.apply(cf)
	return nil
}

// apply overrides every setting that is non-empty in cf
func (c *Config) apply(cf ConfigFile) {
	if cf.ServicesDir != "" {
		c.ServicesDir = cf.ServicesDir
	}
	if cf.OutDir != "" {
		c.OutDir = cf.OutDir
	}
	if cf.Namespace != "" {
		c.Namespace = cf.Namespace
	}
	if cf.RepositoryURL != "" {
		c.RepositoryURL = cf.RepositoryURL
	}
	if cf.Licence != "" {
		c.Licence = cf.Licence
	}
	if cf.Pattern != "" {
		c.Pattern = cf.Pattern
	}
}

// Save writes the config to disk. It refuses to overwrite an existing file.
func (c *Config) Save() error {
	f, err := os.OpenFile(c.ConfigPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	cf := ConfigFile{
		ServicesDir:   c.ServicesDir,
		OutDir:        c.OutDir,
		Namespace:     c.Namespace,
		RepositoryURL: c.RepositoryURL,
		Licence:       c.Licence,
		Pattern:       c.Pattern,
	}

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cf)
}
