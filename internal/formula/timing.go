package formula

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/osse101/etwmath/internal/domain"
)

// Minutes are reported with two decimal places
const minutesPrecision = 2

// Whole seconds must fit in an int64
const maxSeconds = float64(1 << 63)

// biteThroughput is the level gained per second per unit of multiplier
func biteThroughput(multi float64) float64 {
	return multi * domain.EstimatorBiteRate * domain.EstimatorBitesPerSecond
}

// TimeToMax estimates minutes to reach a size level above 141. The first 141
// levels grow at the fast factor and the rest at the slow factor.
// Example: size level 565 at multi 101 takes 4.82 minutes
func TimeToMax(sizeLevel, multi float64) (float64, error) {
	if err := validate(sizeLevel, multi); err != nil {
		return 0, err
	}
	seconds, err := divide(sizeLevel, biteThroughput(multi))
	if err != nil {
		return 0, err
	}
	fastShare, err := divide(domain.SizeLevelPhaseThreshold, sizeLevel)
	if err != nil {
		return 0, err
	}

	fast := seconds * fastShare * domain.FastGrowthFactor
	slow := seconds * (1 - fastShare) * domain.SlowGrowthFactor
	return toMinutes(fast + slow)
}

// TimeToMaxSmall estimates minutes to reach a size level of 141 or below.
// Example: size level 140 at multi 31 takes 2.75 minutes
func TimeToMaxSmall(sizeLevel, multi float64) (float64, error) {
	if err := validate(sizeLevel, multi); err != nil {
		return 0, err
	}
	perMulti, err := divide(sizeLevel, multi)
	if err != nil {
		return 0, err
	}
	seconds, err := divide(perMulti, domain.EstimatorBiteRate*domain.EstimatorBitesPerSecond)
	if err != nil {
		return 0, err
	}

	ramp := 0.5 + sizeLevel/(domain.SizeLevelPhaseThreshold*2)
	return toMinutes(seconds * domain.FastGrowthFactor * ramp)
}

// EstimateTimeToMax picks the estimator that applies to sizeLevel
func EstimateTimeToMax(sizeLevel, multi float64) (float64, error) {
	if sizeLevel > domain.SizeLevelPhaseThreshold {
		return TimeToMax(sizeLevel, multi)
	}
	return TimeToMaxSmall(sizeLevel, multi)
}

// SecondsFromMinutes converts an estimate to whole seconds for display.
// Estimates too long to count in seconds are a domain fault.
func SecondsFromMinutes(minutes float64) (int64, error) {
	seconds := math.Round(minutes * domain.SecondsPerMinute)
	if !(seconds > -maxSeconds && seconds < maxSeconds) {
		return 0, fmt.Errorf("%w: %v minutes overflows whole seconds", domain.ErrDomainFault, minutes)
	}
	return int64(seconds), nil
}

func toMinutes(seconds float64) (float64, error) {
	minutes, err := finite(seconds / domain.SecondsPerMinute)
	if err != nil {
		return 0, err
	}
	return scalar.Round(minutes, minutesPrecision), nil
}
