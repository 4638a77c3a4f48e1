// Package config loads the site configuration file (almanac.yaml) that maps
// pages to content and content to feeds, mounts and history windows.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/offgrid/almanac/core"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the site directory.
const DefaultFile = "almanac.yaml"

// Config is the site configuration. Map keys of Resources, History and Mounts
// are content kinds; Routes values are content kinds or "none".
type Config struct {
	Locale    string            `yaml:"locale"`
	Markdown  bool              `yaml:"markdown"`
	Routes    map[string]string `yaml:"routes"`
	Resources map[string]string `yaml:"resources"`
	History   map[string]int    `yaml:"history"`
	Mounts    map[string]Mount  `yaml:"mounts"`
}

// Mount holds the CSS selectors of one kind's regions.
type Mount struct {
	Primary string `yaml:"primary"`
	Sources string `yaml:"sources,omitempty"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Locale: "pt-BR",
		Routes: map[string]string{
			"":               string(core.KindReflections),
			"index.html":     string(core.KindReflections),
			"news.html":      string(core.KindReflections),
			"motivacao.html": string(core.KindMotivation),
		},
		Resources: map[string]string{
			string(core.KindReflections): "data/reflections.json",
			string(core.KindMotivation):  "data/motivations.json",
		},
		History: map[string]int{
			string(core.KindReflections): core.DefaultReflectionHistory,
			string(core.KindMotivation):  core.DefaultMotivationHistory,
		},
		Mounts: map[string]Mount{
			string(core.KindReflections): {Primary: ".content-section", Sources: `[data-mount="sources"]`},
			string(core.KindMotivation):  {Primary: ".content-section"},
		},
	}
}

// ReadFile reads a config from disk and overlays it on Default. Returns the
// defaults if the file does not exist.
func ReadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Locale != "" {
		c.Locale = o.Locale
	}
	if o.Markdown {
		c.Markdown = true
	}
	for k, v := range o.Routes {
		c.Routes[k] = v
	}
	for k, v := range o.Resources {
		c.Resources[k] = v
	}
	for k, v := range o.History {
		c.History[k] = v
	}
	for k, v := range o.Mounts {
		c.Mounts[k] = v
	}
}

// Validate rejects unknown kinds and negative history windows.
func (c *Config) Validate() error {
	for page, k := range c.Routes {
		if _, ok := core.ParseKind(k); !ok {
			return fmt.Errorf("route %q: unknown content kind %q", page, k)
		}
	}
	for _, m := range []struct {
		field string
		keys  []string
	}{
		{"resources", keys(c.Resources)},
		{"history", keys(c.History)},
		{"mounts", keys(c.Mounts)},
	} {
		for _, k := range m.keys {
			if kind, ok := core.ParseKind(k); !ok || kind == core.KindNone {
				return fmt.Errorf("%s: unknown content kind %q", m.field, k)
			}
		}
	}
	for k, n := range c.History {
		if n < 0 {
			return fmt.Errorf("history %q: negative limit %d", k, n)
		}
	}
	return nil
}

// RouteKinds returns Routes with values parsed. Call Validate first.
func (c *Config) RouteKinds() map[string]core.Kind {
	out := make(map[string]core.Kind, len(c.Routes))
	for page, k := range c.Routes {
		kind, _ := core.ParseKind(k)
		out[page] = kind
	}
	return out
}

// ResourceKinds returns Resources keyed by kind.
func (c *Config) ResourceKinds() map[core.Kind]string {
	out := make(map[core.Kind]string, len(c.Resources))
	for k, v := range c.Resources {
		out[core.Kind(k)] = v
	}
	return out
}

// HistoryKinds returns History keyed by kind.
func (c *Config) HistoryKinds() map[core.Kind]int {
	out := make(map[core.Kind]int, len(c.History))
	for k, v := range c.History {
		out[core.Kind(k)] = v
	}
	return out
}

// MountKinds returns Mounts keyed by kind.
func (c *Config) MountKinds() map[core.Kind]Mount {
	out := make(map[core.Kind]Mount, len(c.Mounts))
	for k, v := range c.Mounts {
		out[core.Kind(k)] = v
	}
	return out
}

// WriteFile writes the config to disk atomically using a temporary file and
// rename.
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".almanac-*.yaml")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
