package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/tallyhq/tally/internal/models"
)

type ExportCmd struct {
	Output string `help:"Write to a file instead of stdout." short:"o" default:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	snapshot, err := ctx.State.ExportData()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported %d habits and %d completions to %s\n",
		len(snapshot.Habits), len(snapshot.Completions), c.Output)
	return nil
}

type ImportCmd struct {
	File  string `arg:"" help:"JSON export file to import."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Replace all data with %d habits and %d completions from %s?",
						len(snapshot.Habits), len(snapshot.Completions), c.File)).
					Description("Existing habits and history will be overwritten.").
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

	if err := ctx.State.ImportData(snapshot); err != nil {
		return err
	}
	fmt.Printf("Imported %d habits and %d completions\n",
		len(snapshot.Habits), len(snapshot.Completions))
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Delete ALL habits and completion history?").
					Description("This cannot be undone. Consider 'tally export' first.").
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

	if err := ctx.State.DeleteAllData(); err != nil {
		return err
	}
	fmt.Println("All data deleted.")
	return nil
}
