package formula

import (
	"gonum.org/v1/gonum/floats"

	"github.com/osse101/etwmath/internal/domain"
)

// Levels holds one level per upgrade track
type Levels struct {
	Size  float64
	Walk  float64
	Multi float64
	Eat   float64
}

// Of returns the level for a track
func (l Levels) Of(track domain.Track) float64 {
	switch track {
	case domain.TrackSize:
		return l.Size
	case domain.TrackWalk:
		return l.Walk
	case domain.TrackMulti:
		return l.Multi
	case domain.TrackEat:
		return l.Eat
	default:
		return 0
	}
}

// cumulative is the total spend on a track up to level:
// investment * (0.5*L^4 + L^3 + 0.5*L^2) - base
// It is zero at level 1, the free starting level.
func cumulative(track domain.Track, level float64) (float64, error) {
	base, investment, err := trackCoefficients(track)
	if err != nil {
		return 0, err
	}
	squared := level * level
	return investment*(0.5*squared*squared+squared*level+0.5*squared) - base, nil
}

// LevelCost returns the price of a single level on a track: base * level^3.
// This cubic is independent of the cumulative curve and is not its derivative.
func LevelCost(track domain.Track, level float64) (float64, error) {
	if err := validate(level); err != nil {
		return 0, err
	}
	base, _, err := trackCoefficients(track)
	if err != nil {
		return 0, err
	}
	return finite(base * level * level * level)
}

// TotalInvestment returns the money spent on a track to reach level
func TotalInvestment(track domain.Track, level float64) (float64, error) {
	if err := validate(level); err != nil {
		return 0, err
	}
	total, err := cumulative(track, level)
	if err != nil {
		return 0, err
	}
	return finite(total)
}

// TotalUpgradeInvestment returns the money spent across all four tracks
func TotalUpgradeInvestment(levels Levels) (float64, error) {
	if err := validate(levels.Size, levels.Walk, levels.Multi, levels.Eat); err != nil {
		return 0, err
	}

	totals := make([]float64, 0, len(domain.Tracks))
	for _, track := range domain.Tracks {
		total, err := cumulative(track, levels.Of(track))
		if err != nil {
			return 0, err
		}
		totals = append(totals, total)
	}
	return finite(floats.Sum(totals))
}

// RangeCost returns the money needed to go from startLevel to endLevel on a track.
// A start above the end gives a negative amount (a refund-style delta).
func RangeCost(track domain.Track, startLevel, endLevel float64) (float64, error) {
	if err := validate(startLevel, endLevel); err != nil {
		return 0, err
	}
	end, err := cumulative(track, endLevel)
	if err != nil {
		return 0, err
	}
	start, err := cumulative(track, startLevel)
	if err != nil {
		return 0, err
	}
	return finite(end - start)
}
