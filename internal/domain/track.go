package domain

// Track is one of the four upgrade lines a player spends money on
type Track string

const (
	TrackSize  Track = "size"
	TrackWalk  Track = "walk"
	TrackMulti Track = "multi"
	TrackEat   Track = "eat"
)

// Tracks lists every upgrade track in display order
var Tracks = []Track{TrackSize, TrackWalk, TrackMulti, TrackEat}

// Per-level cost coefficients: cost = base * level^3
var baseCoefficients = map[Track]float64{
	TrackSize:  10,
	TrackWalk:  135,
	TrackMulti: 5000,
	TrackEat:   10000,
}

// Cumulative investment coefficients, half of the base coefficient for every track
var investmentCoefficients = map[Track]float64{
	TrackSize:  5,
	TrackWalk:  67.5,
	TrackMulti: 2500,
	TrackEat:   5000,
}

// Valid reports whether t is a known track
func (t Track) Valid() bool {
	_, ok := baseCoefficients[t]
	return ok
}

// BaseCoefficient returns the per-level cost coefficient, or false for an unknown track
func (t Track) BaseCoefficient() (float64, bool) {
	c, ok := baseCoefficients[t]
	return c, ok
}

// InvestmentCoefficient returns the cumulative investment coefficient, or false for an unknown track
func (t Track) InvestmentCoefficient() (float64, bool) {
	c, ok := investmentCoefficients[t]
	return c, ok
}

// BiteTier is the size class of a bite
type BiteTier string

const (
	BiteSmall  BiteTier = "small"
	BiteMedium BiteTier = "medium"
	BiteBig    BiteTier = "big"
)

// BiteTiers lists every bite tier from smallest to largest
var BiteTiers = []BiteTier{BiteSmall, BiteMedium, BiteBig}

// Level gained per unit of multiplier for each tier
var biteRates = map[BiteTier]float64{
	BiteSmall:  0.02,
	BiteMedium: 0.03,
	BiteBig:    0.04,
}

// Rate returns the level gained per unit of multiplier, or false for an unknown tier
func (b BiteTier) Rate() (float64, bool) {
	r, ok := biteRates[b]
	return r, ok
}

// Crate is a reward container whose payout scales with maximum size
type Crate string

const (
	CrateBrown   Crate = "brown"
	CrateYellow  Crate = "yellow"
	CratePurple  Crate = "purple"
	CrateJackpot Crate = "jackpot" // daily spin
)

// Crates lists every crate kind
var Crates = []Crate{CrateBrown, CrateYellow, CratePurple, CrateJackpot}

var crateFactors = map[Crate]float64{
	CrateBrown:   1,
	CrateYellow:  2,
	CratePurple:  3,
	CrateJackpot: 5,
}

// Factor returns the payout multiple of maximum size, or false for an unknown crate
func (c Crate) Factor() (float64, bool) {
	f, ok := crateFactors[c]
	return f, ok
}
