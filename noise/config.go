// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Mode selects how the sampled loudness is interpreted.
type Mode string

const (
	// Relative treats the loudness as a signal-to-noise ratio in dB.
	Relative Mode = "relative"
	// Absolute treats the loudness as the noise RMS level in dBFS.
	Absolute Mode = "absolute"
)

func (m Mode) valid() bool { return m == Relative || m == Absolute }

// defaultRange is the loudness range used when none is configured.
func (m Mode) defaultRange() (lo, hi float64) {
	if m == Absolute {
		return -45, -15
	}
	return 3, 30
}

const defaultP = 0.5

// Options is the user-facing configuration. Pointer fields distinguish
// "unset" from zero.
//
// MinSNRInDB and MaxSNRInDB are the deprecated names of MinDB and MaxDB.
// Either pair may be used, never both.
type Options struct {
	Sounds     []string `yaml:"sounds" json:"sounds"`
	NoiseRMS   Mode     `yaml:"noise_rms,omitempty" json:"noise_rms,omitempty"`
	MinDB      *float64 `yaml:"min_db,omitempty" json:"min_db,omitempty"`
	MaxDB      *float64 `yaml:"max_db,omitempty" json:"max_db,omitempty"`
	MinSNRInDB *float64 `yaml:"min_snr_in_db,omitempty" json:"min_snr_in_db,omitempty"`
	MaxSNRInDB *float64 `yaml:"max_snr_in_db,omitempty" json:"max_snr_in_db,omitempty"`
	P          *float64 `yaml:"p,omitempty" json:"p,omitempty"`
}

// Float64 returns a pointer to v, for filling Options literals.
func Float64(v float64) *float64 { return &v }

// Config is the resolved configuration a Transform runs with.
type Config struct {
	Sounds []string `json:"sounds"`
	Mode   Mode     `json:"mode"`
	MinDB  float64  `json:"min_db"`
	MaxDB  float64  `json:"max_db"`
	P      float64  `json:"p"`
}

// LoadOptions decodes YAML options from r. Unknown keys are rejected.
// An empty document yields zero Options.
func LoadOptions(r io.Reader) (Options, error) {
	var o Options
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("noise: decode yaml: %w", err)
	}
	return o, nil
}

// LoadOptionsFile reads YAML options from path.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("noise: open %q: %w", path, err)
	}
	defer f.Close()

	o, err := LoadOptions(f)
	if err != nil {
		return Options{}, fmt.Errorf("noise: parse %q: %w", path, err)
	}
	return o, nil
}

// Resolve maps legacy names, fills defaults and validates. Supplying a
// current range name together with a legacy one fails before anything
// else is checked. warn may be nil.
func (o Options) Resolve(warn WarningHandler) (Config, error) {
	current := o.MinDB != nil || o.MaxDB != nil
	legacy := o.MinSNRInDB != nil || o.MaxSNRInDB != nil
	if current && legacy {
		return Config{}, fmt.Errorf("%w: min_db/max_db cannot be combined with the deprecated min_snr_in_db/max_snr_in_db",
			ErrConfiguration)
	}

	minDB, maxDB := o.MinDB, o.MaxDB
	if legacy {
		if warn != nil {
			warn(Warning{
				Kind:    DeprecationWarning,
				Source:  "min_snr_in_db/max_snr_in_db",
				Message: "min_snr_in_db and max_snr_in_db are deprecated, use min_db and max_db instead",
			})
		}
		minDB, maxDB = o.MinSNRInDB, o.MaxSNRInDB
	}

	cfg := Config{
		Sounds: slices.Clone(o.Sounds),
		Mode:   o.NoiseRMS,
		P:      defaultP,
	}
	if cfg.Mode == "" {
		cfg.Mode = Relative
	}
	cfg.MinDB, cfg.MaxDB = cfg.Mode.defaultRange()
	if minDB != nil {
		cfg.MinDB = *minDB
	}
	if maxDB != nil {
		cfg.MaxDB = *maxDB
	}
	if o.P != nil {
		cfg.P = *o.P
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	if len(c.Sounds) == 0 {
		return ErrEmptyNoiseSource
	}

	var errs []error
	if !c.Mode.valid() {
		errs = append(errs, fmt.Errorf("noise_rms %q: must be %q or %q", c.Mode, Relative, Absolute))
	}
	if math.IsNaN(c.P) || c.P < 0 || c.P > 1 {
		errs = append(errs, fmt.Errorf("p %v: must be within [0, 1]", c.P))
	}
	if !finite(c.MinDB) || !finite(c.MaxDB) {
		errs = append(errs, fmt.Errorf("min_db %v, max_db %v: must be finite", c.MinDB, c.MaxDB))
	} else if c.MinDB > c.MaxDB {
		errs = append(errs, fmt.Errorf("min_db %v is greater than max_db %v", c.MinDB, c.MaxDB))
	}
	for i, s := range c.Sounds {
		if s == "" {
			errs = append(errs, fmt.Errorf("sounds[%d]: empty path", i))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
