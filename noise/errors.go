// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every construction failure.
	ErrConfiguration = errors.New("noise: invalid configuration")

	// ErrEmptyNoiseSource indicates a transform with no noise files.
	ErrEmptyNoiseSource = fmt.Errorf("%w: empty noise source", ErrConfiguration)

	// ErrSnapshot indicates persisted state that cannot be restored.
	ErrSnapshot = errors.New("noise: invalid snapshot")
)
