package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

const (
	// FarFutureDays is the horizon used when the profile has no concrete
	// exam date. It keeps every proximity comparison on the "plenty of
	// time" side without a separate code path.
	FarFutureDays = 999

	// CrisisThresholdDays marks the final-week regime where topic
	// repetition is allowed and revision dominates.
	CrisisThresholdDays = 7

	revisionHorizonDays = 30
)

const examDateLayout = "2006-01-02"

// DaysToExam returns the number of whole days between now and the exam date,
// rounding partial days up so that an exam tomorrow morning still counts as
// one day away. Empty, "other", or unparseable dates yield FarFutureDays.
func DaysToExam(date string, now time.Time) int {
	if date == "" || date == domain.ExamDateOther {
		return FarFutureDays
	}
	exam, err := time.ParseInLocation(examDateLayout, date, now.Location())
	if err != nil {
		return FarFutureDays
	}
	days := int(math.Ceil(exam.Sub(now).Hours() / 24))
	return days
}

// RevisionRatio returns the advised fraction of study time to spend on
// revision for the given exam proximity. The ratio is advisory metadata on
// the protocol, not a constraint the scheduler enforces.
func RevisionRatio(daysToExam int) float64 {
	switch {
	case daysToExam < CrisisThresholdDays:
		return 0.8
	case daysToExam < revisionHorizonDays:
		return 0.5
	default:
		return 0.2
	}
}

// CrisisMode reports whether the exam is close enough that diversity
// filtering is suspended.
func CrisisMode(daysToExam int) bool {
	return daysToExam < CrisisThresholdDays
}
