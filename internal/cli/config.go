package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
)

// DefaultOutputDir is where `holes` writes when neither flag nor config
// names a directory.
const DefaultOutputDir = "MountingHole.pretty"

// fileConfig mirrors footgen.toml.
type fileConfig struct {
	OutputDir     string      `toml:"output_dir"`
	Jobs          int         `toml:"jobs"`
	Tedit         string      `toml:"tedit"`
	MountingHoles []holeEntry `toml:"mounting_hole"`
}

type holeEntry struct {
	Drill  float64  `toml:"drill"`
	Pad    *float64 `toml:"pad"`
	Screw  *float64 `toml:"screw"`
	Labels []string `toml:"labels"`
}

// loadConfig reads a TOML config file. An empty path yields the zero config.
func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (*fileConfig, error) {
	var cfg fileConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Jobs < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: jobs must not be negative", path)
	}
	if cfg.Tedit != "" {
		if _, err := parseTedit(cfg.Tedit); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// extraHoles converts the config's mounting_hole entries.
func (f *fileConfig) extraHoles() []mountinghole.Config {
	if len(f.MountingHoles) == 0 {
		return nil
	}
	out := make([]mountinghole.Config, len(f.MountingHoles))
	for i, h := range f.MountingHoles {
		out[i] = mountinghole.Config{
			Drill:  h.Drill,
			Pad:    h.Pad,
			Screw:  h.Screw,
			Labels: h.Labels,
		}
	}
	return out
}

// holeTable returns the built-in table followed by the config's entries.
func (f *fileConfig) holeTable() []mountinghole.Config {
	return append(mountinghole.BuildTable(), f.extraHoles()...)
}

// parseTedit parses a hexadecimal edit timestamp, with or without a 0x prefix.
func parseTedit(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid tedit %q: want up to 8 hex digits", s)
	}
	return uint32(v), nil
}
