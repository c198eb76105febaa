// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestProvider(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestMetrics_CountsOutcomes(t *testing.T) {
	t.Parallel()

	mp, reader := newTestProvider(t)
	l := noiseLoader()
	in := sine()

	applied := newTransform(t, always("rain.wav"), l, WithMeterProvider(mp))
	skipped := newTransform(t, Options{Sounds: []string{"rain.wav"}, P: Float64(0)}, l, WithMeterProvider(mp))
	silent := newTransform(t, always("silence.wav"), l, WithMeterProvider(mp), WithWarningHandler(func(Warning) {}))

	for range 3 {
		if _, err := applied.Apply(in, 44100); err != nil {
			t.Fatal(err)
		}
	}
	for range 2 {
		if _, err := skipped.Apply(in, 44100); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := silent.Apply(in, 44100); err != nil {
		t.Fatal(err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	calls := findMetric(rm, "audaug.noise.calls")
	if calls == nil {
		t.Fatal("audaug.noise.calls not recorded")
	}
	sum, ok := calls.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("calls data = %T, want Sum[int64]", calls.Data)
	}

	got := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key("outcome"))
		got[v.AsString()] += dp.Value
	}
	want := map[string]int64{OutcomeApplied: 3, OutcomeSkipped: 2, OutcomeSilent: 1}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("calls{outcome=%s} = %d, want %d", k, got[k], w)
		}
	}

	gain := findMetric(rm, "audaug.noise.gain_db")
	if gain == nil {
		t.Fatal("audaug.noise.gain_db not recorded")
	}
	hist, ok := gain.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("gain data = %T, want Histogram[float64]", gain.Data)
	}
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	if count != 3 {
		t.Errorf("gain observations = %d, want 3", count)
	}
}
