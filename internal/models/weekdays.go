package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EncodeWeekdays renders a weekday set as a comma-separated index string
// ("1,3,5") for storage backends that keep it as a single column. An empty
// set encodes as the empty string.
func EncodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// DecodeWeekdays parses the EncodeWeekdays representation.
func DecodeWeekdays(encoded string) ([]time.Weekday, error) {
	if encoded == "" {
		return nil, nil
	}
	parts := strings.Split(encoded, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday index %q", p)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}
