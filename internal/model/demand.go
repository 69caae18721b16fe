package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDemandDistribution is returned when an explicit demand
// distribution has the wrong length or its weights do not sum to 1.0.
// Validation happens before any simulation work starts.
var ErrInvalidDemandDistribution = errors.New("invalid demand distribution")

// distributionTolerance is how far the weight sum may drift from 1.0.
const distributionTolerance = 0.01

// NewDemandProfile spreads totalSteel (tons) across months.
//
// If distribution is non-nil it must have length == months and sum to 1.0
// within tolerance; each month's demand is weight * totalSteel. Otherwise
// demand defaults to an even split over the last 3 months, with the rounding
// remainder absorbed into the final month. Horizons shorter than 3 months put
// everything in the last month.
func NewDemandProfile(totalSteel float64, months int, distribution []float64) ([]float64, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive, got %d", months)
	}
	demand := make([]float64, months)

	if distribution != nil {
		if len(distribution) != months {
			return nil, fmt.Errorf("%w: must have length %d, got %d",
				ErrInvalidDemandDistribution, months, len(distribution))
		}
		sum := 0.0
		for _, w := range distribution {
			sum += w
		}
		if math.Abs(sum-1.0) > distributionTolerance {
			return nil, fmt.Errorf("%w: weights sum to %.4f, must sum to 1.0",
				ErrInvalidDemandDistribution, sum)
		}
		for m, w := range distribution {
			demand[m] = w * totalSteel
		}
		return demand, nil
	}

	if months >= 3 {
		third := totalSteel / 3.0
		demand[months-3] = third
		demand[months-2] = third
		demand[months-1] = third
		// Absorb any rounding remainder into the final month so the
		// profile sums to totalSteel exactly.
		remainder := totalSteel - (demand[months-3] + demand[months-2] + demand[months-1])
		demand[months-1] += remainder
	} else {
		demand[months-1] = totalSteel
	}
	return demand, nil
}
