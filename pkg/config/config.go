// Package config loads brackt's user configuration from
// $XDG_CONFIG_HOME/brackt/config.toml. A missing file means defaults; a
// malformed file is an error the user should see.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/logging"
)

// Config holds the user-tunable defaults for a detection pass.
type Config struct {
	// Extensions accepted during scanning, without leading dots.
	Extensions []string       `toml:"extensions"`
	Sequence   SequenceConfig `toml:"sequence"`
	Scan       ScanConfig     `toml:"scan"`
}

// SequenceConfig are the defaults for the sequence generator.
type SequenceConfig struct {
	// Step is the EV distance between bracket exposures.
	Step float64 `toml:"step"`
	// Images is the bracket size; odd counts center on the metered
	// exposure.
	Images int `toml:"images"`
	// Order is "zero-minus-plus" or "minus-zero-plus".
	Order string `toml:"order"`
}

// ScanConfig are the defaults for a pass.
type ScanConfig struct {
	// Mode is "absolute" or "delta".
	Mode string `toml:"mode"`
	// Action is "move" or "textfile".
	Action string `toml:"action"`
	// BracketOnly restricts candidates to auto-bracket exposure mode.
	BracketOnly bool `toml:"bracket_only"`
}

// Default returns the built-in configuration. The extension list covers the
// common camera RAW formats.
func Default() Config {
	return Config{
		Extensions: []string{
			"ari", "cr3", "cr2", "crw", "erf", "raf", "3fr", "kdc",
			"dcs", "dcr", "iiq", "mos", "mef", "mrw", "nef", "nrw",
			"orf", "rw2", "pef", "srw", "arw", "srf", "sr2", "dng",
		},
		Sequence: SequenceConfig{
			Step:   1.0,
			Images: 3,
			Order:  "zero-minus-plus",
		},
		Scan: ScanConfig{
			Mode:        "delta",
			Action:      "move",
			BracketOnly: true,
		},
	}
}

// Path returns the config file location under the XDG config home.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "brackt", "config.toml")
}

// Load reads the config file, applying it on top of the defaults. A missing
// file yields the defaults without error.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a specific config file on top of the defaults.
func LoadFrom(path string) (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	logger.Debug().
		Str("path", path).
		Int("extensions", len(cfg.Extensions)).
		Msg("config loaded")

	return cfg, nil
}
