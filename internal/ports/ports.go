package ports

import (
	"context"
	"io"

	"github.com/csg33k/ratecalc/internal/domain"
)

// Calculator computes the derived pay-package figures for one input record.
// Implementations are pure: same inputs, same outputs, no retained state.
type Calculator interface {
	Calculate(in domain.Inputs) domain.Results

	// Target returns the hourly margin the gauge measures against.
	Target() float64
}

// QuoteSheetGenerator writes a printable quote sheet for one calculation.
type QuoteSheetGenerator interface {
	Generate(ctx context.Context, in domain.Inputs, r domain.Results, w io.Writer) error
}
