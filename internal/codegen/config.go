package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"golang.org/x/exp/maps"
)

const configFile = "plain.toml"

// packageConfig is a package's optional plain.toml:
//
//	rename = "snake_case"
//	output = "plain_gen.go"
//
//	[types.Level]
//	rename     = "lowercase"
//	trimprefix = "Level"
//
// Command-line settings override it; per-type sections override the
// top-level keys.
type packageConfig struct {
	Rename     string                `toml:"rename"`
	TrimPrefix string                `toml:"trimprefix"`
	Output     string                `toml:"output"`
	Types      map[string]typeConfig `toml:"types"`
}

type typeConfig struct {
	Rename     string `toml:"rename"`
	TrimPrefix string `toml:"trimprefix"`
}

// loadConfig reads dir's plain.toml. A missing file is an empty config;
// unknown keys are errors so typos do not silently fall back to defaults.
func loadConfig(dir string) (*packageConfig, error) {
	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &packageConfig{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg packageConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		return nil, fmt.Errorf("%s has unknown keys %v", path, unknown)
	}
	return &cfg, nil
}

func (c *packageConfig) renameFor(typeName string) string {
	if tc, ok := c.Types[typeName]; ok && tc.Rename != "" {
		return tc.Rename
	}
	return c.Rename
}

func (c *packageConfig) trimPrefixFor(typeName string) string {
	if tc, ok := c.Types[typeName]; ok && tc.TrimPrefix != "" {
		return tc.TrimPrefix
	}
	return c.TrimPrefix
}

// typeNames lists the configured per-type sections, sorted for determinism.
func (c *packageConfig) typeNames() []string {
	names := maps.Keys(c.Types)
	sort.Strings(names)
	return names
}
