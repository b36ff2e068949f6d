package formula

import (
	"math"

	"github.com/osse101/etwmath/internal/domain"
)

// BiteAmount returns how much size one bite adds. A bite raises the effective
// level by rate*multi and the gain is the size difference, rounded.
// Example: size 505,000 at multi 100 gives small 20,300, medium 30,600, big 41,000
func BiteAmount(tier domain.BiteTier, currentSize, multi float64) (float64, error) {
	if err := validate(currentSize, multi); err != nil {
		return 0, err
	}
	rate, err := biteRate(tier)
	if err != nil {
		return 0, err
	}
	level, err := levelFromSize(currentSize)
	if err != nil {
		return 0, err
	}
	grown := sizeFromLevel(level + rate*multi)
	return finite(math.Round(grown - currentSize))
}

// BiteDeltaMulti recovers the multiplier from the sizes before and after one bite.
// Example: 9,440 to 10,954 gives small 53, medium 35, big 27
func BiteDeltaMulti(tier domain.BiteTier, startSize, endSize float64) (float64, error) {
	if err := validate(startSize, endSize); err != nil {
		return 0, err
	}
	rate, err := biteRate(tier)
	if err != nil {
		return 0, err
	}
	startLevel, err := levelFromSize(startSize)
	if err != nil {
		return 0, err
	}
	endLevel, err := levelFromSize(endSize)
	if err != nil {
		return 0, err
	}
	multi, err := divide(endLevel-startLevel, rate)
	if err != nil {
		return 0, err
	}
	return finite(math.Round(multi))
}

// FirstBiteMulti recovers the multiplier from the very first bite, taken at size 0.
// Example: a first bite of 270 gives small 94, medium 63, big 47
func FirstBiteMulti(tier domain.BiteTier, biteAmount float64) (float64, error) {
	if err := validate(biteAmount); err != nil {
		return 0, err
	}
	rate, err := biteRate(tier)
	if err != nil {
		return 0, err
	}
	level, err := levelFromSize(biteAmount)
	if err != nil {
		return 0, err
	}
	multi, err := divide(level, rate)
	if err != nil {
		return 0, err
	}
	return finite(math.Round(multi))
}
