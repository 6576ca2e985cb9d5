package valueobjects

import (
	"fmt"
	"math"

	"github.com/vuongmanhnghia/song-playlist/internal/errors"
)

// MaxTotalWeight is the largest sum of weights a playlist can hold.
// Totals start at zero and only grow by valid weights, so they are never negative.
const MaxTotalWeight = math.MaxInt64

// Weight is the relative selection probability of a song
type Weight int64

// Int64 returns the raw weight
func (w Weight) Int64() int64 {
	return int64(w)
}

// IsValid checks if the weight is positive
func (w Weight) IsValid() bool {
	return w > 0
}

// Validate returns ErrInvalidWeight for zero or negative weights
func (w Weight) Validate() error {
	if !w.IsValid() {
		return fmt.Errorf("%w: got %d", errors.ErrInvalidWeight, int64(w))
	}
	return nil
}

// AddTo adds the weight to a running total, failing instead of wrapping.
// total must be non-negative.
func (w Weight) AddTo(total int64) (int64, error) {
	if int64(w) > MaxTotalWeight-total {
		return total, fmt.Errorf("%w: %d + %d", errors.ErrWeightOverflow, total, int64(w))
	}
	return total + int64(w), nil
}
