// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"log/slog"

	"github.com/pdiddy/texclean/pkg/types"
)

// Diagnostics collects the warnings of a single conversion and mirrors them
// to a logger. A nil *Diagnostics discards everything.
type Diagnostics struct {
	logger   *slog.Logger
	warnings []types.Warning
}

// NewDiagnostics returns a collector that also logs each warning to logger.
// A nil logger only collects.
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Diagnostics{logger: logger}
}

// Warn records a warning raised by stage.
func (d *Diagnostics) Warn(kind types.WarningKind, stage, message string) {
	if d == nil {
		return
	}
	d.warnings = append(d.warnings, types.Warning{Kind: kind, Stage: stage, Message: message})
	d.logger.Warn(message, slog.String("kind", string(kind)), slog.String("stage", stage))
}

// Warnings returns a copy of the recorded warnings in emission order.
func (d *Diagnostics) Warnings() []types.Warning {
	if d == nil || len(d.warnings) == 0 {
		return nil
	}
	out := make([]types.Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}
