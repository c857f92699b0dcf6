package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ianwitherow/eslint-friendly-formatter/pkg/formatter"
)

// File represents the optional .eff.yaml configuration.
type File struct {
	EditorScheme  string `yaml:"editor_scheme,omitempty"`
	NoLinkRules   bool   `yaml:"no_link_rules"`
	NoGray        bool   `yaml:"no_gray"`
	AbsolutePaths bool   `yaml:"absolute_paths"`
	ByIssue       bool   `yaml:"by_issue"`
	FilterRule    string `yaml:"filter_rule,omitempty"`
	Theme         string `yaml:"theme,omitempty"`
}

const fileName = ".eff.yaml"

// Load reads the configuration file. A missing file yields the zero
// config; an unreadable or malformed file is reported on stderr and
// ignored, so lint output keeps flowing.
func Load() File {
	path := configPath()
	if path == "" {
		return File{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return File{}
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error parsing config file %s: %v. Using defaults.\n", path, err)
		return File{}
	}

	if os.Getenv("EFF_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG config] loaded %s\n", path)
	}
	return cfg
}

// Options converts the file values into the base options layer.
// Environment variables and process arguments are layered on top by the
// formatter's options adapter.
func (f File) Options() formatter.Options {
	return formatter.Options{
		GroupByIssue:  f.ByIssue,
		FilterRule:    f.FilterRule,
		AbsolutePaths: f.AbsolutePaths,
		NoGray:        f.NoGray,
		NoLinkRules:   f.NoLinkRules,
		EditorScheme:  f.EditorScheme,
	}
}

// configPath finds the configuration file: the working directory first,
// then the user config dir (eff/.eff.yaml).
func configPath() string {
	debug := os.Getenv("EFF_DEBUG") != ""

	if _, err := os.Stat(fileName); err == nil {
		if debug {
			abs, _ := filepath.Abs(fileName)
			fmt.Fprintf(os.Stderr, "[DEBUG config] using local config file: %s\n", abs)
		}
		return fileName
	}

	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		xdgPath := filepath.Join(configHome, "eff", fileName)
		if _, err := os.Stat(xdgPath); err == nil {
			if debug {
				fmt.Fprintf(os.Stderr, "[DEBUG config] using user config file: %s\n", xdgPath)
			}
			return xdgPath
		}
	}

	if debug {
		fmt.Fprintln(os.Stderr, "[DEBUG config] no config file found, using defaults")
	}
	return ""
}
