// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
)

// State is the lifecycle of a Transform's parameter record.
type State int

const (
	// Unset means no parameters have been drawn yet.
	Unset State = iota
	// Randomized means every Apply draws fresh parameters.
	Randomized
	// Frozen means Apply reuses the current record.
	Frozen
)

var stateNames = [...]string{Unset: "unset", Randomized: "randomized", Frozen: "frozen"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stateNames) {
		return nil, fmt.Errorf("noise: unknown state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *State) UnmarshalText(b []byte) error {
	for i, name := range stateNames {
		if name == string(b) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("noise: unknown state %q", b)
}

// Params is the decision set drawn for one Apply. It holds only plain
// values.
type Params struct {
	ShouldApply bool `json:"should_apply"`
	// NoisePath is the selected noise file.
	NoisePath string `json:"noise_file_path,omitempty"`
	// LoudnessDB is the SNR in dB (Relative) or noise level in dBFS
	// (Absolute).
	LoudnessDB float64 `json:"loudness_db,omitempty"`
	// OffsetFraction positions the crop window within the slack of a
	// longer noise file, in [0, 1).
	OffsetFraction float64 `json:"offset_fraction,omitempty"`
	Mode           Mode    `json:"mode,omitempty"`
}

// Map returns p as JSON-encodable primitives. Fields that only matter when
// the noise is applied are omitted otherwise.
func (p Params) Map() map[string]any {
	m := map[string]any{"should_apply": p.ShouldApply}
	if !p.ShouldApply {
		return m
	}
	m["noise_file_path"] = p.NoisePath
	m["loudness_db"] = p.LoudnessDB
	m["offset_fraction"] = p.OffsetFraction
	m["mode"] = string(p.Mode)
	return m
}
