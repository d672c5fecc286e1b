package cli

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

type MarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, false)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today()
	}

	done, err := ctx.State.ToggleCompletion(habit.ID, day)
	if err != nil {
		return err
	}

	if done {
		fmt.Printf("Marked habit %q for %s", c.Name, day)
		if streak := ctx.State.CurrentStreak(habit.ID, day); streak > 1 {
			fmt.Printf(" (streak: %d)", streak)
		}
		fmt.Println()
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	habits := ctx.State.Habits(false)
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.Today()
	fmt.Printf("Habits for %s:\n\n", today)

	done := 0
	active := 0
	for _, habit := range habits {
		if !ctx.State.IsActive(habit.ID, today) {
			continue
		}
		active++
		status := "[ ]"
		if ctx.State.IsCompleted(habit.ID, today) {
			status = "[x]"
			done++
		}
		line := fmt.Sprintf("%s %s", status, habit.Name)
		if streak := ctx.State.CurrentStreak(habit.ID, today); streak > 0 {
			line += fmt.Sprintf("  (streak: %d)", streak)
		}
		fmt.Println(line)
	}

	if active == 0 {
		fmt.Println("Nothing scheduled today.")
		return nil
	}

	fmt.Printf("\nDone: %d/%d", done, active)
	if done == active {
		fmt.Print("  Perfect day!")
	}
	fmt.Println()
	return nil
}

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *LogCmd) Run(ctx *Context) error {
	habits := ctx.State.Habits(false)
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	var selected []models.Habit
	if c.Habit != "" {
		habit, err := ctx.ResolveHabit(c.Habit, false)
		if err != nil {
			return err
		}
		selected = []models.Habit{habit}
	} else {
		selected = habits
	}

	today := utils.Today()
	start := utils.AddDays(today, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	// Header with dates
	const maxNameLen = 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		day := utils.AddDays(start, i)
		fmt.Printf(" %5s", day[5:7]+"/"+day[8:10])
	}
	fmt.Println()

	fmt.Print(strings.Repeat("-", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Print("------")
	}
	fmt.Println()

	for _, habit := range selected {
		name := habit.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		} else {
			name = name + strings.Repeat(" ", maxNameLen-len(name))
		}
		fmt.Print(name)

		// x = completed, . = active but missed, blank = not active that day
		for i := 0; i < c.Days; i++ {
			day := utils.AddDays(start, i)
			switch {
			case ctx.State.IsCompleted(habit.ID, day):
				fmt.Print("  x   ")
			case ctx.State.IsActive(habit.ID, day):
				fmt.Print("  .   ")
			default:
				fmt.Print("      ")
			}
		}
		fmt.Println()
	}

	return nil
}
