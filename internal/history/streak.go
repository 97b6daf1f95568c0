// Package history works over the study calendar: streaks, leave blocks, and
// the syllabus pace projection derived from past compliance.
package history

import (
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

// DayKey formats a time as the calendar key used throughout the history map.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CurrentStreak counts consecutive active days (full or partial) ending at
// the reference day. Today not yet having an entry does not break the
// streak; a streak ending yesterday still counts. Leave days are neutral:
// they neither extend nor break the run.
func CurrentStreak(h domain.History, now time.Time) int {
	day := now

	// An empty or missed today means the streak is judged from yesterday.
	if rec, ok := h[DayKey(day)]; !ok || !activeDay(rec) {
		if ok && rec.Status == domain.DayMissed {
			return 0
		}
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		rec, ok := h[DayKey(day)]
		if !ok {
			break
		}
		switch {
		case activeDay(rec):
			streak++
		case rec.Status == domain.DayLeave:
			// fall through to the previous day
		default:
			return streak
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func activeDay(rec domain.DayRecord) bool {
	return rec.Status == domain.DayFull || rec.Status == domain.DayPartial
}

// ActiveDays counts full and partial days in the entire history.
func ActiveDays(h domain.History) int {
	n := 0
	for _, rec := range h {
		if activeDay(rec) {
			n++
		}
	}
	return n
}
