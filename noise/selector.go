// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Selector deals noise ids from a shuffled pool. Each id is dealt once per
// cycle; a new cycle never starts with the id that ended the previous one.
type Selector struct {
	ids     []string
	pool    []string
	last    string
	hasLast bool
}

// NewSelector returns a Selector over a copy of ids.
func NewSelector(ids []string) (*Selector, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyNoiseSource
	}
	return &Selector{ids: slices.Clone(ids)}, nil
}

// Next returns the next id, drawing any shuffle from r.
func (s *Selector) Next(r *rand.Rand) string {
	if len(s.pool) == 0 {
		s.reshuffle(r)
	}

	id := s.pool[0]
	s.pool = s.pool[1:]
	s.last, s.hasLast = id, true
	return id
}

func (s *Selector) reshuffle(r *rand.Rand) {
	s.pool = slices.Clone(s.ids)
	r.Shuffle(len(s.pool), func(i, j int) {
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	})

	if len(s.pool) > 1 && s.hasLast && s.pool[0] == s.last {
		j := 1 + r.IntN(len(s.pool)-1)
		s.pool[0], s.pool[j] = s.pool[j], s.pool[0]
	}
}

// IDs returns a copy of the full id sequence.
func (s *Selector) IDs() []string { return slices.Clone(s.ids) }

// Remaining reports how many ids are left in the current cycle.
func (s *Selector) Remaining() int { return len(s.pool) }

type selectorState struct {
	Pool []string `json:"pool"`
	Last *string  `json:"last,omitempty"`
}

func (s *Selector) snapshot() selectorState {
	st := selectorState{Pool: slices.Clone(s.pool)}
	if s.hasLast {
		last := s.last
		st.Last = &last
	}
	return st
}

func (s *Selector) restore(st selectorState) error {
	known := make(map[string]int, len(s.ids))
	for _, id := range s.ids {
		known[id]++
	}
	for _, id := range st.Pool {
		if known[id] == 0 {
			return fmt.Errorf("%w: pool id %q is not a configured sound", ErrSnapshot, id)
		}
		known[id]--
	}

	s.pool = slices.Clone(st.Pool)
	s.last, s.hasLast = "", false
	if st.Last != nil {
		s.last, s.hasLast = *st.Last, true
	}
	return nil
}
