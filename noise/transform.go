// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/ik5/audaug/transform"
	"github.com/ik5/audaug/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Loader returns the audio at path as mono samples at sampleRate.
type Loader interface {
	Load(path string, sampleRate int) ([]float32, error)
}

// Transform mixes background noise into a signal. It is not safe for
// concurrent use; give each goroutine its own instance.
type Transform struct {
	cfg    Config
	loader Loader

	pcg      *rand.PCG
	rng      *rand.Rand
	selector *Selector

	params    Params
	hasParams bool
	state     State

	noiseTransform transform.Transform

	logger  *slog.Logger
	warn    WarningHandler
	metrics *Metrics
}

var _ transform.Transform = (*Transform)(nil)

type settings struct {
	seed           *uint64
	logger         *slog.Logger
	warn           WarningHandler
	noiseTransform transform.Transform
	meterProvider  metric.MeterProvider
}

// Option configures a Transform.
type Option func(*settings)

// WithSeed makes the random sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.seed = &seed }
}

// WithLogger sets the logger for debug records and, unless
// WithWarningHandler is also given, for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithWarningHandler routes warnings to h instead of the logger.
func WithWarningHandler(h WarningHandler) Option {
	return func(s *settings) { s.warn = h }
}

// WithNoiseTransform applies t to the conformed noise before it is mixed.
func WithNoiseTransform(t transform.Transform) Option {
	return func(s *settings) { s.noiseTransform = t }
}

// WithMeterProvider records metrics to mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *settings) { s.meterProvider = mp }
}

func newSettings(options []Option) settings {
	var s settings
	for _, o := range options {
		o(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.warn == nil {
		s.warn = LogWarnings(s.logger)
	}
	if s.meterProvider == nil {
		s.meterProvider = otel.GetMeterProvider()
	}
	return s
}

// New resolves opts and returns a Transform drawing noise through loader.
func New(opts Options, loader Loader, options ...Option) (*Transform, error) {
	s := newSettings(options)

	cfg, err := opts.Resolve(s.warn)
	if err != nil {
		return nil, err
	}
	return build(cfg, loader, s)
}

func build(cfg Config, loader Loader, s settings) (*Transform, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: nil loader", ErrConfiguration)
	}

	sel, err := NewSelector(cfg.Sounds)
	if err != nil {
		return nil, err
	}

	met, err := NewMetrics(s.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("noise: metrics: %w", err)
	}

	var pcg *rand.PCG
	if s.seed != nil {
		pcg = rand.NewPCG(*s.seed, *s.seed^0x9e3779b97f4a7c15)
	} else {
		pcg = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Transform{
		cfg:            cfg,
		loader:         loader,
		pcg:            pcg,
		rng:            rand.New(pcg),
		selector:       sel,
		noiseTransform: s.noiseTransform,
		logger:         s.logger,
		warn:           s.warn,
		metrics:        met,
	}, nil
}

// Config returns a copy of the resolved configuration.
func (t *Transform) Config() Config {
	cfg := t.cfg
	cfg.Sounds = slices.Clone(cfg.Sounds)
	return cfg
}

// Sounds returns a copy of the noise path sequence.
func (t *Transform) Sounds() []string { return slices.Clone(t.cfg.Sounds) }

// SetNoiseTransform replaces the secondary transform; nil removes it.
// The parameter record is untouched, so a frozen instance keeps its noise
// choice and loudness.
func (t *Transform) SetNoiseTransform(nt transform.Transform) { t.noiseTransform = nt }

// Parameters returns the current record and state. The record is the zero
// Params while the state is Unset.
func (t *Transform) Parameters() (Params, State) { return t.params, t.state }

// SerializeParameters returns the current record as JSON-encodable values.
func (t *Transform) SerializeParameters() map[string]any { return t.params.Map() }

// FreezeParameters makes Apply reuse the current record. Freezing before
// any record exists lets the next Apply draw one, which is then kept.
func (t *Transform) FreezeParameters() { t.state = Frozen }

// UnfreezeParameters makes every following Apply draw fresh parameters.
func (t *Transform) UnfreezeParameters() {
	if t.hasParams {
		t.state = Randomized
	} else {
		t.state = Unset
	}
}

// RandomizeParameters draws a new record for a signal. It is the only
// place randomness is consumed. An explicit call while frozen replaces the
// record and stays frozen.
func (t *Transform) RandomizeParameters(samples []float32, sampleRate int) {
	p := Params{ShouldApply: t.rng.Float64() < t.cfg.P}
	if p.ShouldApply {
		p.NoisePath = t.selector.Next(t.rng)
		p.LoudnessDB = t.cfg.MinDB + t.rng.Float64()*(t.cfg.MaxDB-t.cfg.MinDB)
		p.OffsetFraction = t.rng.Float64()
		p.Mode = t.cfg.Mode
	}

	t.params, t.hasParams = p, true
	if t.state != Frozen {
		t.state = Randomized
	}

	t.logger.Debug("noise parameters drawn",
		"should_apply", p.ShouldApply,
		"noise_file_path", p.NoisePath,
		"loudness_db", p.LoudnessDB,
		"samples", len(samples),
		"sample_rate", sampleRate,
	)
}

// Apply returns samples with background noise mixed in. The result always
// has len(samples) samples; samples itself is never modified. Loader
// errors are returned as is.
func (t *Transform) Apply(samples []float32, sampleRate int) ([]float32, error) {
	if t.state != Frozen || !t.hasParams {
		t.RandomizeParameters(samples, sampleRate)
	}
	ctx := context.Background()

	p := t.params
	if !p.ShouldApply || len(samples) == 0 {
		t.metrics.call(ctx, OutcomeSkipped)
		return passThrough(samples), nil
	}

	noise, err := t.loader.Load(p.NoisePath, sampleRate)
	if err != nil {
		return nil, err
	}
	noise = Conform(noise, len(samples), p.OffsetFraction)

	noiseRMS := utils.RMS(noise)
	if noiseRMS < SilenceThreshold {
		t.warn(Warning{
			Kind:    SilenceWarning,
			Source:  p.NoisePath,
			Message: p.NoisePath + " is too silent to be added as noise. Returning the input unchanged.",
		})
		t.metrics.call(ctx, OutcomeSilent)
		return passThrough(samples), nil
	}

	gain := Gain(utils.RMS(samples), noiseRMS, p.Mode, p.LoudnessDB)

	if t.noiseTransform != nil {
		noise, err = t.noiseTransform.Apply(noise, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("noise transform: %w", err)
		}
		if len(noise) != len(samples) {
			noise = Conform(noise, len(samples), 0)
		}
	}

	t.metrics.call(ctx, OutcomeApplied)
	if gain > 0 {
		t.metrics.GainDB.Record(ctx, utils.AmplitudeToDecibels(gain))
	}
	return Mix(samples, noise, gain), nil
}

// passThrough copies samples into a fresh slice that is never nil.
func passThrough(samples []float32) []float32 {
	out := make([]float32, len(samples))
	copy(out, samples)
	return out
}
