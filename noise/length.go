// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"math"

	"github.com/ik5/audaug/utils"
)

// Conform returns a copy of noise cropped or looped to exactly target
// samples.
//
// Longer noise yields a contiguous window starting at
// floor(offsetFraction*(len(noise)-target+1)). Shorter noise is tiled from
// its first sample, so every repetition starts in phase, then cropped.
// Empty noise yields target zeros.
func Conform[S utils.Sample](noise []S, target int, offsetFraction float64) []S {
	if target <= 0 {
		return []S{}
	}

	out := make([]S, target)
	if len(noise) == 0 {
		return out
	}

	if len(noise) >= target {
		slack := len(noise) - target
		offset := int(math.Floor(offsetFraction * float64(slack+1)))
		offset = max(0, min(offset, slack))
		copy(out, noise[offset:offset+target])
		return out
	}

	for n := 0; n < target; {
		n += copy(out[n:], noise)
	}
	return out
}
