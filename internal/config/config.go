package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "forge.json"

	// DefaultComponentsDir is the default components root.
	DefaultComponentsDir = "components"

	// DefaultOutputDir is the default build output directory.
	DefaultOutputDir = "dist"

	// DefaultPort is the default preview server port.
	DefaultPort = 4300

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"
)

// DefaultCategories are the categories suggested by init.
var DefaultCategories = []string{"ui", "form", "layout", "navigation", "feedback", "data-display"}

// Config represents the complete forge.json configuration.
// It is loaded once per command and passed explicitly into every
// pipeline stage; there is no ambient configuration state.
type Config struct {
	// Name is the registry name.
	Name string `json:"name,omitempty"`

	// Description is a short registry description.
	Description string `json:"description,omitempty"`

	// Version is the registry version.
	Version string `json:"version,omitempty"`

	// Author is the registry author.
	Author string `json:"author,omitempty"`

	// License is the registry license identifier.
	License string `json:"license,omitempty"`

	// Repository is the source repository URL.
	Repository string `json:"repository,omitempty"`

	// Homepage is the registry homepage URL.
	Homepage string `json:"homepage,omitempty"`

	// ComponentsDir is the directory containing component directories.
	ComponentsDir string `json:"componentsDir,omitempty"`

	// OutputDir is the build output directory.
	OutputDir string `json:"outputDir,omitempty"`

	// Categories is the informational category list. It is not enforced
	// against component category values.
	Categories []string `json:"categories,omitempty"`

	// TypeScript controls whether scaffolded components use TypeScript.
	TypeScript bool `json:"typescript,omitempty"`

	// Tailwind controls whether scaffolded components assume Tailwind.
	Tailwind bool `json:"tailwind,omitempty"`

	// RegistryURL is the URL of the published registry document,
	// used by search against a remote registry.
	RegistryURL string `json:"registryUrl,omitempty"`

	// TokenRequired marks the published registry as requiring a token.
	TokenRequired bool `json:"tokenRequired,omitempty"`

	// Serve contains preview server settings.
	Serve ServeConfig `json:"serve,omitempty"`

	// Publish contains publish target settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains preview server settings.
type ServeConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`
}

// PublishConfig contains publish target settings.
type PublishConfig struct {
	// S3 configures publishing to an S3-compatible static host.
	S3 *S3Config `json:"s3,omitempty"`

	// Git configures publishing to a git branch.
	Git *GitConfig `json:"git,omitempty"`
}

// S3Config configures the S3 publish target.
type S3Config struct {
	// Bucket is the bucket name.
	Bucket string `json:"bucket"`

	// Prefix is the key prefix for uploaded objects.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`
}

// GitConfig configures the git publish target.
type GitConfig struct {
	// Branch is the branch the output tree is committed to.
	Branch string `json:"branch,omitempty"`

	// Remote is the remote to push to.
	Remote string `json:"remote,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version:       "0.1.0",
		License:       "MIT",
		ComponentsDir: DefaultComponentsDir,
		OutputDir:     DefaultOutputDir,
		Categories:    append([]string(nil), DefaultCategories...),
		TypeScript:    true,
		Serve: ServeConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for forge.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No forge.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'forge init' to create a registry here")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse forge.json: " + err.Error()).
			WithSuggestion("Check that forge.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E102").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E102").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.ComponentsDir == "" {
		c.ComponentsDir = DefaultComponentsDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Categories == nil {
		c.Categories = append([]string(nil), DefaultCategories...)
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E103").
			WithField("serve.port").
			WithDetail("Port must be between 0 and 65535")
	}
	if c.Publish.S3 != nil && c.Publish.S3.Bucket == "" {
		return errors.New("E103").
			WithField("publish.s3.bucket").
			WithDetail("An S3 publish target needs a bucket name")
	}
	return nil
}

// ComponentsPath returns the absolute path to the components root.
func (c *Config) ComponentsPath() string {
	if filepath.IsAbs(c.ComponentsDir) {
		return c.ComponentsDir
	}
	return filepath.Join(c.Dir(), c.ComponentsDir)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.OutputDir) {
		return c.OutputDir
	}
	return filepath.Join(c.Dir(), c.OutputDir)
}

// ComponentPath returns the absolute path of one component directory.
func (c *Config) ComponentPath(name string) string {
	return filepath.Join(c.ComponentsPath(), name)
}

// ServeAddress returns the address string for the preview server.
func (c *Config) ServeAddress() string {
	return fmtAddr(c.Serve.Host, c.Serve.Port)
}

// ServeURL returns the full URL for the preview server.
func (c *Config) ServeURL() string {
	return "http://" + c.ServeAddress()
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the registry root.
// Returns the directory containing forge.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E101").
				WithDetail("No forge.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'forge init' to create a registry")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

func fmtAddr(host string, port int) string {
	return host + ":" + strconv.Itoa(port)
}
