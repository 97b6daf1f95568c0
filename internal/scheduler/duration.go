package scheduler

import (
	"math"
	"regexp"
	"strconv"
)

// DefaultTaskMinutes is assigned when a candidate carries no usable duration.
const DefaultTaskMinutes = 45

var durationPattern = regexp.MustCompile(`[0-9.]+`)

// ParseDurationMinutes converts a free-form duration string such as
// "1.50 Hrs" into minutes, snapped to the nearest 5. Anything without a
// parseable number falls back to DefaultTaskMinutes.
func ParseDurationMinutes(raw string) int {
	match := durationPattern.FindString(raw)
	if match == "" {
		return DefaultTaskMinutes
	}
	hours, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return DefaultTaskMinutes
	}
	minutes := math.Round(hours * 60)
	snapped := int(math.Round(minutes/5)) * 5
	if snapped <= 0 {
		return DefaultTaskMinutes
	}
	return snapped
}
