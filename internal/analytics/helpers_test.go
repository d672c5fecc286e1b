package analytics

import "github.com/tallyhq/tally/internal/utils"

func addDays(day string, n int) string {
	return utils.AddDays(day, n)
}
