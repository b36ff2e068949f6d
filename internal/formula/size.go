package formula

import (
	"fmt"
	"math"

	"github.com/osse101/etwmath/internal/domain"
)

// sizeFromLevel evaluates size = a*level^2 + a*level
func sizeFromLevel(level float64) float64 {
	a := domain.SizeCurveFactor
	return a*level*level + a*level
}

// levelFromSize solves a*level^2 + a*level - size = 0 for the positive root,
// written as 2*size / (a + sqrt(disc)) so tiny sizes do not cancel
func levelFromSize(size float64) (float64, error) {
	a := domain.SizeCurveFactor
	discriminant := a*a + 4*a*size
	if discriminant < 0 {
		return 0, fmt.Errorf("%w: negative discriminant %v for size %v", domain.ErrDomainFault, discriminant, size)
	}
	return divide(2*size, a+math.Sqrt(discriminant))
}

// SizeAtLevel returns the maximum size reached at a size level.
// Example: level 100 gives 505,000
func SizeAtLevel(level float64) (float64, error) {
	if err := validate(level); err != nil {
		return 0, err
	}
	return finite(sizeFromLevel(level))
}

// LevelAtSize returns the size level that produces a maximum size.
// Example: size 505,000 gives level 100
func LevelAtSize(size float64) (float64, error) {
	if err := validate(size); err != nil {
		return 0, err
	}
	level, err := levelFromSize(size)
	if err != nil {
		return 0, err
	}
	return finite(level)
}

// OptimalSizeLevelThreshold returns the size level at which further size
// upgrades stop paying off for a multiplier level and ratio
func OptimalSizeLevelThreshold(multiLevel, ratio float64) (float64, error) {
	if err := validate(multiLevel, ratio); err != nil {
		return 0, err
	}
	return finite(multiLevel * ratio)
}

// OptimalMulti returns the multiplier level that matches a size level at a ratio
func OptimalMulti(sizeLevel, ratio float64) (float64, error) {
	if err := validate(sizeLevel, ratio); err != nil {
		return 0, err
	}
	multi, err := divide(sizeLevel, ratio)
	if err != nil {
		return 0, err
	}
	return finite(multi)
}
