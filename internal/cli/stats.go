package cli

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/utils"
)

type StatsCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *StatsCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	}
	if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}

	summary := ctx.State.SummaryFor(day)

	fmt.Printf("Stats for %s:\n\n", day)
	fmt.Printf("  Active habits:    %d\n", summary.ActiveCount)
	fmt.Printf("  Completed today:  %d (%d%%)\n", summary.DoneCount, summary.DayRate)
	fmt.Printf("  Perfect days:     %d\n", summary.PerfectDays)
	fmt.Println()
	fmt.Printf("  7-day rate:       %.0f%%\n", summary.Rate7)
	fmt.Printf("  30-day rate:      %.0f%%\n", summary.Rate30)
	fmt.Printf("  365-day rate:     %.0f%%\n", summary.Rate365)
	fmt.Println()
	fmt.Printf("  Weekend rate:     %.0f%%\n", summary.WeekendSplit.WeekendRate)
	fmt.Printf("  Weekday rate:     %.0f%%\n", summary.WeekendSplit.WeekdayRate)

	pattern := ctx.State.WeekdayPattern(day)
	if len(pattern) > 0 {
		fmt.Println("\nWeekday pattern (30 days):")
		for _, p := range pattern {
			bar := strings.Repeat("#", int(p.Value/5))
			fmt.Printf("  %-9s %5.1f%% %s\n", p.Label, p.Value, bar)
		}
	}

	// Streak table
	habits := ctx.State.Habits(false)
	if len(habits) > 0 {
		fmt.Println("\nStreaks:")
		for _, habit := range habits {
			fmt.Printf("  %-24s current %3d   longest %3d\n",
				habit.Name,
				ctx.State.CurrentStreak(habit.ID, day),
				ctx.State.LongestStreak(habit.ID))
		}
	}

	return nil
}

type InsightsCmd struct {
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *InsightsCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	}
	if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}

	insights := ctx.State.Correlations(day)
	if len(insights) == 0 {
		fmt.Println("No correlations found yet. Keep tracking - insights need a few weeks of overlapping history.")
		return nil
	}

	fmt.Println("Habit correlations:")
	for _, in := range insights {
		direction := "tend to happen together"
		if in.R < 0 {
			direction = "tend to trade off"
		}
		fmt.Printf("  %s + %s: %s (%s, r=%+.2f over %d days)\n",
			in.HabitA, in.HabitB, direction, in.Strength, in.R, in.SampleDays)
	}
	return nil
}
