package site

import (
	"os"
	"path/filepath"

	"github.com/scalameta/docsite/internal/errors"
)

// DefaultBaseURL is used when the configuration leaves baseUrl empty.
const DefaultBaseURL = "/"

// FileNames lists the configuration file names Load looks for, in order.
var FileNames = []string{
	"siteConfig.json",
	"siteConfig.yaml",
	"siteConfig.yml",
	"siteConfig.toml",
}

// Colors holds the site palette.
type Colors struct {
	// PrimaryColor is the header and accent color.
	PrimaryColor string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty" toml:"primaryColor,omitempty"`

	// SecondaryColor is the footer background color.
	SecondaryColor string `json:"secondaryColor" yaml:"secondaryColor" toml:"secondaryColor"`
}

// Config is the site configuration shared by every page of the website.
type Config struct {
	// Title is the site name, used as the logo alt text.
	Title string `json:"title" yaml:"title" toml:"title"`

	// Tagline is a short description shown under the title.
	Tagline string `json:"tagline,omitempty" yaml:"tagline,omitempty" toml:"tagline,omitempty"`

	// URL is the public origin of the site (e.g., "https://scalameta.org").
	URL string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`

	// BaseURL prefixes every internal link. It starts and ends with "/".
	BaseURL string `json:"baseUrl" yaml:"baseUrl" toml:"baseUrl"`

	// FooterIcon is the logo path relative to BaseURL. Empty hides the logo.
	FooterIcon string `json:"footerIcon,omitempty" yaml:"footerIcon,omitempty" toml:"footerIcon,omitempty"`

	// Favicon is the favicon path relative to BaseURL.
	Favicon string `json:"favicon,omitempty" yaml:"favicon,omitempty" toml:"favicon,omitempty"`

	// Copyright is rendered verbatim at the bottom of the footer.
	Copyright string `json:"copyright" yaml:"copyright" toml:"copyright"`

	// Colors is the site palette.
	Colors Colors `json:"colors" yaml:"colors" toml:"colors"`

	// GitterURL is the community chat link.
	GitterURL string `json:"gitterUrl,omitempty" yaml:"gitterUrl,omitempty" toml:"gitterUrl,omitempty"`

	// RepoURL is the source repository link.
	RepoURL string `json:"repoUrl,omitempty" yaml:"repoUrl,omitempty" toml:"repoUrl,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticLinks are the external link targets of the footer.
type StaticLinks struct {
	GitterURL string `json:"gitterUrl"`
	RepoURL   string `json:"repoUrl"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
	}
}

// Links returns the external link targets carried by the configuration.
func (c *Config) Links() StaticLinks {
	return StaticLinks{
		GitterURL: c.GitterURL,
		RepoURL:   c.RepoURL,
	}
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

// Load reads configuration from the specified directory, using the first
// file of FileNames that exists.
func Load(dir string) (*Config, error) {
	path, ok := Find(dir)
	if !ok {
		return nil, errors.New("E141").
			WithSource(dir).
			WithDetail("No siteConfig.json, siteConfig.yaml or siteConfig.toml found in " + dir)
	}
	return LoadFile(path)
}

// LoadFile reads, decodes, defaults and validates the configuration file at
// path. The format is chosen by extension.
func LoadFile(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").WithSource(path)
		}
		return nil, errors.New("E120").WithSource(path).Wrap(err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithSource(path)
		}
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes data in the given format, applies defaults and validates
// the result.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := New()
	if err := decode(data, format, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads configuration from path, which may name either a config
// file or a directory containing one. An empty path searches upward from
// the working directory.
func Resolve(path string) (*Config, error) {
	if path == "" {
		return LoadFromWorkingDir()
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").WithSource(path)
		}
		return nil, errors.New("E120").WithSource(path).Wrap(err)
	}
	if info.IsDir() {
		return Load(path)
	}
	return LoadFile(path)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Colors.PrimaryColor == "" {
		c.Colors.PrimaryColor = c.Colors.SecondaryColor
	}
}

// Find returns the path of the first configuration file present in dir.
func Find(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, ok := Find(dir)
	return ok
}

// FindProjectRoot walks up directories to find the website root.
// Returns the directory containing a site configuration, or an error if
// none is found. A "website" subdirectory is checked at every level.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		if website := filepath.Join(dir, "website"); Exists(website) {
			return website, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E141").
				WithSource(startDir).
				WithDetail("No site configuration found in " + startDir + " or any parent directory")
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
