package formula

import (
	"fmt"

	"github.com/osse101/etwmath/internal/domain"
)

// CrateReward returns the maximum money a crate pays out for a maximum size.
// Formula: size * factor (brown 1, yellow 2, purple 3, jackpot 5)
func CrateReward(size float64, crate domain.Crate) (float64, error) {
	if err := validate(size); err != nil {
		return 0, err
	}
	factor, ok := crate.Factor()
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgUnknownCrate, crate)
	}
	return finite(size * factor)
}

// WalkSpeedValue converts a walk speed level to the in-game speed value
func WalkSpeedValue(level float64) (float64, error) {
	if err := validate(level); err != nil {
		return 0, err
	}
	return finite(domain.WalkSpeedPerLevel*level + domain.WalkSpeedBase)
}

// WalkSpeedLevel is the inverse of WalkSpeedValue. The division is real-valued:
// a value of 301 gives level 145.5, not 145.
func WalkSpeedLevel(value float64) (float64, error) {
	if err := validate(value); err != nil {
		return 0, err
	}
	level, err := divide(value-domain.WalkSpeedBase, domain.WalkSpeedPerLevel)
	if err != nil {
		return 0, err
	}
	return finite(level)
}
