package constants

const (
	// MaxStreakLookbackDays bounds the backward walk of the current-streak
	// calculation. See the product note in DESIGN.md: a true multi-year
	// unbroken streak will be reported as 365.
	MaxStreakLookbackDays = 365

	// MinJointDaysForCorrelation is the number of jointly-active days two
	// habits need before a correlation is computed for the pair.
	MinJointDaysForCorrelation = 5

	// CorrelationNoiseThreshold suppresses weak correlations from insight
	// output; |r| at or below this value is treated as noise.
	CorrelationNoiseThreshold = 0.2

	// Correlation strength bands.
	CorrelationStrongThreshold   = 0.6
	CorrelationModerateThreshold = 0.35

	// CorrelationWindowDays is the trailing window scanned when aligning
	// completion series for pairwise correlation.
	CorrelationWindowDays = 90

	// PatternWindowDays is the trailing window scanned for day-of-week and
	// weekend/weekday pattern statistics.
	PatternWindowDays = 30
)
