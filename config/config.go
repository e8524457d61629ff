/*
   Copyright The Lpmerge Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config holds the lpmerge configuration, loaded from a TOML file
// under the root directory. Values left out of the file keep their defaults;
// flag names are canonicalized against the vocabulary at load time.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lightplacer/lpmerge/placer"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigName is the configuration file name under the root directory.
	DefaultConfigName = "config.toml"

	defaultRootDirName  = ".lpmerge"
	defaultOutputIndent = 2
)

// DefaultRootPath returns the default root directory, ~/.lpmerge. When the
// home directory cannot be resolved it falls back to the working directory.
func DefaultRootPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultRootDirName
	}
	return filepath.Join(home, defaultRootDirName)
}

// DefaultConfigPath returns the configuration file path under root.
func DefaultConfigPath(root string) string {
	return filepath.Join(root, DefaultConfigName)
}

type Config struct {
	// OutputIndent is the number of spaces merged documents are indented
	// with. Zero writes compact JSON.
	OutputIndent int `toml:"output_indent"`

	// Merge carries flag rewrites applied to every merge result.
	Merge MergeConfig `toml:"merge"`

	// Catalog configures merge run recording.
	Catalog CatalogConfig `toml:"catalog"`
}

type MergeConfig struct {
	// AddFlags are flag names added to every light entry of merge results.
	AddFlags []string `toml:"add_flags"`

	// RemoveFlags are flag names removed from every light entry of merge
	// results. A name in both lists is removed.
	RemoveFlags []string `toml:"remove_flags"`
}

type CatalogConfig struct {
	// Disable turns off merge run recording.
	Disable bool `toml:"disable"`

	// Path overrides the catalog database location.
	Path string `toml:"path"`
}

type configParser func(*Config) error

var parsers = []configParser{parseMergeConfig}

// NewConfig returns an initialized Config with default values set.
func NewConfig() *Config {
	cfg := &Config{}

	// Set any defaults which do not align with Go zero values.
	initParsers := []configParser{defaultOutputConfig}
	for _, p := range append(initParsers, parsers...) {
		p(cfg)
	}

	return cfg
}

// NewConfigFromToml loads the configuration file at cfgPath over the
// defaults.
func NewConfigFromToml(cfgPath string) (*Config, error) {
	f, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %q: %w", cfgPath, err)
	}
	defer f.Close()

	cfg := NewConfig()
	if err = toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file %q: %w", cfgPath, err)
	}
	if err := parseConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", cfgPath, err)
	}
	return cfg, nil
}

// LoadConfig resolves and loads the configuration for root. An empty cfgPath
// means the default file under root, which may be absent; a cfgPath given
// explicitly must exist.
func LoadConfig(root, cfgPath string) (*Config, error) {
	if cfgPath == "" {
		cfgPath = DefaultConfigPath(root)
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			return NewConfig(), nil
		}
	}
	return NewConfigFromToml(cfgPath)
}

func parseConfig(cfg *Config) error {
	for _, p := range parsers {
		if err := p(cfg); err != nil {
			return err
		}
	}
	return nil
}

func defaultOutputConfig(cfg *Config) error {
	cfg.OutputIndent = defaultOutputIndent
	return nil
}

// parseMergeConfig checks the configured flag names against the vocabulary
// and canonicalizes their spelling.
func parseMergeConfig(cfg *Config) error {
	add, err := placer.ParseFlags(cfg.Merge.AddFlags)
	if err != nil {
		return fmt.Errorf("merge.add_flags: %w", err)
	}
	remove, err := placer.ParseFlags(cfg.Merge.RemoveFlags)
	if err != nil {
		return fmt.Errorf("merge.remove_flags: %w", err)
	}
	cfg.Merge.AddFlags = placer.FlagStrings(add)
	cfg.Merge.RemoveFlags = placer.FlagStrings(remove)
	return nil
}
