package analytics

import (
	"math"
	"sort"

	"github.com/tallyhq/tally/internal/activity"
	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
)

// CorrelationInsight reports the relationship between a pair of habits over
// their jointly-active days.
type CorrelationInsight struct {
	HabitA     string   `json:"habit_a"`
	HabitB     string   `json:"habit_b"`
	R          float64  `json:"r"`
	Strength   Strength `json:"strength"`
	SampleDays int      `json:"sample_days"`
}

// Correlations computes pairwise Pearson correlations between all non-deleted
// habits over the trailing correlation window ending at today.
//
// For each pair the completion series are aligned to the days where BOTH
// habits were active; days where either habit was inactive are dropped from
// both series rather than treated as misses. Pairs with fewer than
// MinJointDaysForCorrelation joint days are skipped, and correlations at or
// below the noise threshold are suppressed. Results are ordered by
// descending |r|.
func Correlations(habits []models.Habit, completions []models.Completion, today string) []CorrelationInsight {
	var live []models.Habit
	for _, h := range habits {
		if !h.IsDeleted() {
			live = append(live, h)
		}
	}

	sets := make(map[string]DaySet, len(live))
	for _, h := range live {
		sets[h.ID] = NewDaySet(completions, h.ID)
	}

	var insights []CorrelationInsight
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a, b := live[i], live[j]

			var seriesA, seriesB []float64
			for day := range activity.DaysBack(today, constants.CorrelationWindowDays) {
				if !activity.IsActive(a, day) || !activity.IsActive(b, day) {
					continue
				}
				seriesA = append(seriesA, indicator(sets[a.ID], day))
				seriesB = append(seriesB, indicator(sets[b.ID], day))
			}

			if len(seriesA) < constants.MinJointDaysForCorrelation {
				continue
			}

			r := Pearson(seriesA, seriesB)
			if math.Abs(r) <= constants.CorrelationNoiseThreshold {
				continue
			}

			insights = append(insights, CorrelationInsight{
				HabitA:     a.Name,
				HabitB:     b.Name,
				R:          r,
				Strength:   Classify(r),
				SampleDays: len(seriesA),
			})
		}
	}

	sort.Slice(insights, func(i, j int) bool {
		return math.Abs(insights[i].R) > math.Abs(insights[j].R)
	})
	return insights
}

func indicator(set DaySet, day string) float64 {
	if set.Contains(day) {
		return 1
	}
	return 0
}
