package advanced

import (
	"math"

	"github.com/pkg/errors"
)

const (
	DefaultSamplesPerSegment = 10

	// Distance between adjacent float32 values at 1.0. Renderers upload
	// vertices as float32, so points closer than this cannot be told apart.
	Float32Epsilon = 1.0 / (1 << 23)
)

type Options struct {
	// Number of samples taken along each curve segment. Straight segments use
	// half as many, since they have no curvature to follow.
	SamplesPerSegment int
	// Cross-sections whose top and bottom points are no further apart than
	// this collapse to a single point.
	Epsilon float64
	// Convert relative commands to absolute ones before sampling instead of
	// rejecting them.
	AllowRelative bool
}

func DefaultOptions() Options {
	return Options{
		SamplesPerSegment: DefaultSamplesPerSegment,
		Epsilon:           Float32Epsilon,
	}
}

func (o Options) Validate() error {
	if o.SamplesPerSegment <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "samples per segment must be positive, got %d", o.SamplesPerSegment)
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return errors.Wrapf(ErrInvalidOptions, "epsilon must be a finite non-negative number, got %v", o.Epsilon)
	}
	return nil
}
