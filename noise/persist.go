// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"encoding/json"
	"fmt"
)

const snapshotVersion = 1

type snapshot struct {
	Version  int           `json:"version"`
	Config   Config        `json:"config"`
	State    State         `json:"state"`
	Params   *Params       `json:"params,omitempty"`
	Selector selectorState `json:"selector"`
	RNG      []byte        `json:"rng"`
}

// MarshalBinary captures everything needed to continue the instance
// elsewhere: configuration, parameter record, state, the remaining noise
// pool and the random generator. The loader, logger, metrics and noise
// transform are not included; pass them to Restore.
func (t *Transform) MarshalBinary() ([]byte, error) {
	rng, err := t.pcg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("noise: marshal rng: %w", err)
	}

	snap := snapshot{
		Version:  snapshotVersion,
		Config:   t.Config(),
		State:    t.state,
		Selector: t.selector.snapshot(),
		RNG:      rng,
	}
	if t.hasParams {
		p := t.params
		snap.Params = &p
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("noise: marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore rebuilds a Transform from MarshalBinary output. WithSeed is
// ignored; the generator continues from the saved state.
func Restore(data []byte, loader Loader, options ...Option) (*Transform, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrSnapshot, snap.Version)
	}
	if err := snap.Config.Validate(); err != nil {
		return nil, err
	}
	if snap.Params == nil && snap.State == Randomized {
		return nil, fmt.Errorf("%w: randomized state without parameters", ErrSnapshot)
	}

	t, err := build(snap.Config, loader, newSettings(options))
	if err != nil {
		return nil, err
	}

	if err := t.pcg.UnmarshalBinary(snap.RNG); err != nil {
		return nil, fmt.Errorf("%w: rng: %w", ErrSnapshot, err)
	}
	if err := t.selector.restore(snap.Selector); err != nil {
		return nil, err
	}

	t.state = snap.State
	if snap.Params != nil {
		t.params, t.hasParams = *snap.Params, true
	}
	return t, nil
}
