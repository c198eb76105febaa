// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ik5/audaug/noise"

// Outcomes recorded on Metrics.Calls.
const (
	OutcomeApplied = "applied"
	OutcomeSkipped = "skipped"
	OutcomeSilent  = "silent"
)

// Metrics holds the instruments a Transform records to.
type Metrics struct {
	// Calls counts Apply invocations. Use with attribute:
	//   attribute.String("outcome", ...)
	Calls metric.Int64Counter

	// GainDB tracks the gain applied to the noise, in dB.
	GainDB metric.Float64Histogram
}

// NewMetrics creates the instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Calls, err = m.Int64Counter("audaug.noise.calls",
		metric.WithDescription("Background noise transform calls by outcome."),
	); err != nil {
		return nil, err
	}
	if met.GainDB, err = m.Float64Histogram("audaug.noise.gain_db",
		metric.WithDescription("Gain applied to the conformed noise."),
		metric.WithUnit("dB"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

func (m *Metrics) call(ctx context.Context, outcome string) {
	m.Calls.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
