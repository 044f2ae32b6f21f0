package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"makeicon/icon"
)

// Config holds everything a makeicon run needs. It can be read from a YAML
// file and overridden by command-line flags.
type Config struct {
	Platform       string   `yaml:"platform"`
	Resize         bool     `yaml:"resize"`
	Sizes          []int    `yaml:"sizes"`
	Contents       string   `yaml:"contents"`
	Input          []string `yaml:"input"`
	Output         string   `yaml:"output"`
	Filter         string   `yaml:"filter"`
	Clean          bool     `yaml:"clean"`
	Trash          bool     `yaml:"trash"`
	icon.Transform `yaml:",inline"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{Platform: string(icon.PlatformWin32)}
}

// Load reads and parses the configuration file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SetSizes parses a comma-separated size list. An element ending in .json
// names an iconset descriptor instead of a size. Both Sizes and Contents
// are replaced.
func (c *Config) SetSizes(list string) error {
	c.Sizes, c.Contents = nil, ""
	for _, s := range SplitList(list) {
		if strings.HasSuffix(strings.ToLower(s), ".json") {
			c.Contents = s
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid icon size %q", s)
		}
		c.Sizes = append(c.Sizes, v)
	}
	if len(c.Sizes) == 0 && c.Contents == "" {
		return fmt.Errorf("no sizes provided")
	}
	return nil
}

// Validate checks the fields the engine does not see and returns the
// validated engine options.
func (c *Config) Validate(log icon.Logger) (icon.Options, error) {
	if len(c.Input) == 0 {
		return icon.Options{}, fmt.Errorf("no input images provided")
	}
	if c.Output == "" {
		return icon.Options{}, fmt.Errorf("no output name provided")
	}
	return c.Engine(log)
}

// Engine converts the configuration into validated icon.Options.
func (c *Config) Engine(log icon.Logger) (icon.Options, error) {
	platform, err := icon.ParsePlatform(c.Platform)
	if err != nil {
		return icon.Options{}, err
	}
	filter, err := icon.ParseFilter(c.Filter)
	if err != nil {
		return icon.Options{}, err
	}
	o := icon.Options{
		Platform:    platform,
		AllowResize: c.Resize,
		Sizes:       c.Sizes,
		Contents:    c.Contents,
		Output:      c.Output,
		Transform:   c.Transform,
		Filter:      filter,
		Log:         log,
	}
	if err := o.Validate(); err != nil {
		return icon.Options{}, err
	}
	return o, nil
}

// SplitList splits a comma-separated flag value, dropping empty elements.
func SplitList(s string) []string {
	var list []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
