// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"log/slog"
)

// WarningKind classifies non-fatal conditions.
type WarningKind int

const (
	// SilenceWarning reports a noise segment too quiet to scale; the input
	// is returned unchanged.
	SilenceWarning WarningKind = iota + 1
	// DeprecationWarning reports a legacy configuration name.
	DeprecationWarning
)

func (k WarningKind) String() string {
	switch k {
	case SilenceWarning:
		return "silence"
	case DeprecationWarning:
		return "deprecation"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a non-fatal condition raised during construction or Apply.
type Warning struct {
	Kind WarningKind
	// Source is the noise path or configuration key involved.
	Source  string
	Message string
}

func (w Warning) String() string { return w.Kind.String() + ": " + w.Message }

// WarningHandler receives warnings synchronously.
type WarningHandler func(Warning)

// LogWarnings returns a handler that logs each warning at Warn level.
func LogWarnings(logger *slog.Logger) WarningHandler {
	return func(w Warning) {
		logger.Warn(w.Message, "kind", w.Kind.String(), "source", w.Source)
	}
}
