// SPDX-License-Identifier: EPL-2.0

package audaug

import "errors"

// ErrInvalidSampleRate indicates a non-positive target sample rate.
var ErrInvalidSampleRate = errors.New("sample rate must be positive")
