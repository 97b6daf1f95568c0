package history

import (
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

// LeaveDays builds the day records for a leave block starting today. Days
// below one are treated as a single day. Existing entries for those days are
// meant to be overwritten by the caller's merge.
func LeaveDays(now time.Time, days int, leaveType string) domain.History {
	if days < 1 {
		days = 1
	}
	out := make(domain.History, days)
	for i := 0; i < days; i++ {
		key := DayKey(now.AddDate(0, 0, i))
		out[key] = domain.DayRecord{Status: domain.DayLeave, Type: leaveType, Percent: 0}
	}
	return out
}

// RecordCompletion updates today's entry after a task completion: full once
// every task of the day is done, partial otherwise. Percent carries the share
// of completed tasks.
func RecordCompletion(h domain.History, now time.Time, completed, total int) domain.History {
	if h == nil {
		h = make(domain.History)
	}
	if total <= 0 {
		return h
	}
	status := domain.DayPartial
	if completed >= total {
		status = domain.DayFull
	}
	h[DayKey(now)] = domain.DayRecord{Status: status, Percent: completed * 100 / total}
	return h
}
