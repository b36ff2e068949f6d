package domain

// Quadratic size curve: size = SizeCurveFactor*level^2 + SizeCurveFactor*level
const SizeCurveFactor = 50.0

// Walk speed: value = WalkSpeedPerLevel*level + WalkSpeedBase
const (
	WalkSpeedPerLevel = 2.0
	WalkSpeedBase     = 10.0
)

// Time-to-max estimator constants
const (
	// SizeLevelPhaseThreshold splits the fast and slow growth phases
	SizeLevelPhaseThreshold = 141.0
	FastGrowthFactor        = 3.3
	SlowGrowthFactor        = 5.1
	// EstimatorBiteRate is the medium bite rate the estimators assume
	EstimatorBiteRate = 0.03
	// EstimatorBitesPerSecond is the assumed bite frequency
	EstimatorBitesPerSecond = 3.0
)

// Time conversion
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3600
	SecondsPerDay    = 86400
)

// Version of the formula set
const Version = "1.0.0"
