package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/tallyhq/tally/internal/state"
	"github.com/tallyhq/tally/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	Pause   HabitPauseCmd   `cmd:"" help:"Pause a habit until a date."`
	Resume  HabitResumeCmd  `cmd:"" help:"Resume a paused habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete, history kept)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
	Purge   HabitPurgeCmd   `cmd:"" help:"Permanently delete a habit and its history."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
	Color       string `help:"Display color (hex or terminal color)." default:""`
	Days        string `help:"Comma-separated weekdays (e.g. mon,wed,fri). Empty means every day." default:""`
	Until       string `help:"End date in YYYY-MM-DD for a temporary habit." default:""`
	Duration    int    `help:"Run length in days for a temporary habit (alternative to --until)." default:"0"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	weekdays, err := ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	params := state.HabitParams{
		Name:         c.Name,
		Description:  c.Description,
		Color:        c.Color,
		Weekdays:     weekdays,
		DurationDays: c.Duration,
	}
	if c.Until != "" {
		params.EndDate = &c.Until
	}

	habit, err := ctx.State.AddHabit(params)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, FormatSchedule(habit))
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.State.Habits(c.Deleted)
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.Today()
	for _, habit := range habits {
		status := ""
		if habit.IsDeleted() {
			status = " [DELETED]"
		} else if habit.IsPaused() && today <= *habit.PausedUntil {
			status = " [PAUSED]"
		} else if habit.IsTemporary() && today > *habit.EndDate {
			status = " [ENDED]"
		}
		fmt.Printf("%-24s %s%s\n", habit.Name, FormatSchedule(habit), status)
	}
	return nil
}

type HabitEditCmd struct {
	Name        string  `arg:"" help:"Habit to edit."`
	NewName     string  `help:"New name." default:""`
	Description *string `help:"New description."`
	Color       *string `help:"New display color."`
	Days        *string `help:"New weekday schedule (comma-separated, empty for every day)."`
	Until       *string `help:"New end date (YYYY-MM-DD), empty string to clear."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, false)
	if err != nil {
		return err
	}

	params := state.HabitParams{
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		Weekdays:    habit.Weekdays,
		EndDate:     habit.EndDate,
	}
	if c.NewName != "" {
		params.Name = c.NewName
	}
	if c.Description != nil {
		params.Description = *c.Description
	}
	if c.Color != nil {
		params.Color = *c.Color
	}
	if c.Days != nil {
		weekdays, err := ParseWeekdays(*c.Days)
		if err != nil {
			return err
		}
		params.Weekdays = weekdays
	}
	if c.Until != nil {
		if *c.Until == "" {
			params.EndDate = nil
		} else {
			params.EndDate = c.Until
		}
	}

	updated, err := ctx.State.UpdateHabit(habit.ID, params)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s (%s)\n", updated.Name, FormatSchedule(updated))
	return nil
}

type HabitPauseCmd struct {
	Name  string `arg:"" help:"Habit to pause."`
	Until string `arg:"" help:"Last paused day in YYYY-MM-DD (inclusive)."`
}

func (c *HabitPauseCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, false)
	if err != nil {
		return err
	}
	if err := ctx.State.Pause(habit.ID, c.Until); err != nil {
		return err
	}
	fmt.Printf("Paused habit %q through %s\n", c.Name, c.Until)
	return nil
}

type HabitResumeCmd struct {
	Name string `arg:"" help:"Habit to resume."`
}

func (c *HabitResumeCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, false)
	if err != nil {
		return err
	}
	if habit.PausedUntil == nil {
		return fmt.Errorf("habit %q is not paused", c.Name)
	}
	if err := ctx.State.Unpause(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Resumed habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, false)
	if err != nil {
		return err
	}
	if err := ctx.State.SoftDelete(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Println("(This is a soft delete. Use 'tally habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, true)
	if err != nil {
		return err
	}
	if err := ctx.State.Restore(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}

type HabitPurgeCmd struct {
	Name  string `arg:"" help:"Habit to permanently delete."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitPurgeCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Name, true)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Permanently delete %q and all of its history?", habit.Name)).
					Description("This cannot be undone.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.State.PermanentDelete(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Permanently deleted habit: %s\n", c.Name)
	return nil
}
