// Package formula holds the Eat the World progression formulas.
//
// Every function is pure: no shared state, no I/O, safe for concurrent use.
// Each returns (value, error); on failure the value is 0 and the error wraps
// domain.ErrInvalidInput or domain.ErrDomainFault.
package formula

import (
	"fmt"
	"math"

	"github.com/osse101/etwmath/internal/domain"
	"github.com/osse101/etwmath/internal/validation"
)

// validate applies the input contract to every argument of a formula
func validate(values ...float64) error {
	return validation.Positive(values...)
}

// divide is the only place a formula divides by a runtime value
func divide(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, fmt.Errorf("%w: division by zero", domain.ErrDomainFault)
	}
	return numerator / denominator, nil
}

// finite rejects NaN and ±Inf so a broken result never leaves the package
func finite(value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: result %v is not finite", domain.ErrDomainFault, value)
	}
	return value, nil
}

func biteRate(tier domain.BiteTier) (float64, error) {
	rate, ok := tier.Rate()
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgUnknownTier, tier)
	}
	return rate, nil
}

func trackCoefficients(track domain.Track) (base, investment float64, err error) {
	base, ok := track.BaseCoefficient()
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgUnknownTrack, track)
	}
	investment, _ = track.InvestmentCoefficient()
	return base, investment, nil
}
