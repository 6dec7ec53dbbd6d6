package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fwojciec/llmsdoc"
	"gopkg.in/yaml.v3"
)

// AppName names the XDG subdirectories searched for config and data.
const AppName = "llmsdoc"

// Config is the optional YAML configuration file.
//
//	outline: https://angular.dev/llms.txt
//	detail: https://angular.dev/llms-full.txt
//	framework:
//	  name: Angular
//	  slug: angular
type Config struct {
	Outline   string             `yaml:"outline"`
	Detail    string             `yaml:"detail"`
	Framework *llmsdoc.Framework `yaml:"framework"`
}

// FrameworkOrDefault returns the configured framework, or the default one
// when none is configured. A missing slug is derived from the name.
func (c *Config) FrameworkOrDefault() llmsdoc.Framework {
	if c.Framework == nil || c.Framework.Name == "" {
		return llmsdoc.DefaultFramework()
	}
	fw := *c.Framework
	if fw.Slug == "" {
		fw.Slug = Slug(fw.Name)
	}
	return fw
}

// Slug lowercases name and joins its words with underscores so it fits in
// a tool name.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Resolver finds the config file and the default documentation sources.
type Resolver struct {
	// FindConfig returns the path of a config file relative to the XDG
	// config directories.
	FindConfig func(relPath string) (string, error)

	// FindData returns the path of a data file relative to the XDG data
	// directories.
	FindData func(relPath string) (string, error)
}

// NewResolver returns a Resolver searching the XDG base directories.
func NewResolver() *Resolver {
	return &Resolver{
		FindConfig: xdg.SearchConfigFile,
		FindData:   xdg.SearchDataFile,
	}
}

// LoadConfig reads the config file at p. When p is empty the XDG config
// directories are searched for llmsdoc/config.yaml, and a missing file
// yields an empty config.
func (r *Resolver) LoadConfig(p string) (*Config, error) {
	if p == "" {
		found, err := r.FindConfig(path.Join(AppName, "config.yaml"))
		if err != nil {
			return &Config{}, nil
		}
		p = found
	}

	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, llmsdoc.Errorf(llmsdoc.ENOTFOUND, "config file not found: %s", p)
	} else if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", p, err)
	}
	return &cfg, nil
}

// Sources resolves the source locations. Each one is taken from the flag
// value, then the config file, then the XDG data directories, and finally
// falls back to the default file name in the working directory.
func (r *Resolver) Sources(cfg *Config, outline, detail string) llmsdoc.Sources {
	return llmsdoc.Sources{
		Outline: r.resolve(outline, cfg.Outline, llmsdoc.DefaultOutlineFile),
		Detail:  r.resolve(detail, cfg.Detail, llmsdoc.DefaultDetailFile),
	}
}

func (r *Resolver) resolve(flag, configured, name string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	if found, err := r.FindData(path.Join(AppName, name)); err == nil {
		return found
	}
	return name
}
