package history

import (
	"fmt"
	"math"

	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/scheduler"
)

const (
	minActiveDaysForProjection = 3

	syllabusDaysBeginner = 120
	syllabusDaysRepeater = 90

	// minEffectiveSpeed floors the efficiency so a bad opening week does
	// not project an absurd finish date.
	minEffectiveSpeed = 0.1

	comfortableBufferDays = 10
)

// Pace classifies how the projected syllabus finish compares to the exam.
type Pace string

const (
	PaceNoExamDate       Pace = "no_exam_date"
	PaceInsufficientData Pace = "insufficient_data"
	PaceOnTrack          Pace = "on_track"
	PaceTight            Pace = "tight"
	PaceBehind           Pace = "behind"
)

// Insight is the strategic projection shown on the status screen.
type Insight struct {
	Pace          Pace
	DaysToExam    int
	ActiveDays    int
	ProjectedDays int
	BufferDays    int
}

// Message renders the insight as a one-line verdict.
func (in Insight) Message() string {
	switch in.Pace {
	case PaceNoExamDate:
		return "Set an exam date to unlock the syllabus projection."
	case PaceInsufficientData:
		return fmt.Sprintf("Complete %d missions to unlock the syllabus projection.", minActiveDaysForProjection)
	case PaceOnTrack:
		return fmt.Sprintf("On track. Expected finish %d days early.", in.BufferDays)
	case PaceTight:
		return "Cut-to-cut. No slack in the schedule."
	default:
		return fmt.Sprintf("Behind schedule by %d days. Speed up.", -in.BufferDays)
	}
}

// StrategicInsight projects syllabus completion from past compliance. The
// efficiency is the share of recorded days that were active; dividing the
// level's syllabus length by it estimates the real days needed, and the
// buffer is what remains before the exam.
func StrategicInsight(dna *domain.DNA, h domain.History, daysToExam int) Insight {
	in := Insight{DaysToExam: daysToExam, ActiveDays: ActiveDays(h)}

	if dna.Goal.Date == "" || dna.Goal.Date == domain.ExamDateOther || daysToExam == scheduler.FarFutureDays {
		in.Pace = PaceNoExamDate
		return in
	}
	if in.ActiveDays < minActiveDaysForProjection {
		in.Pace = PaceInsufficientData
		return in
	}

	recorded := len(h)
	if recorded == 0 {
		recorded = 1
	}
	efficiency := float64(in.ActiveDays) / float64(recorded)
	speed := math.Max(efficiency, minEffectiveSpeed)

	required := syllabusDaysRepeater
	if dna.Level == domain.LevelBeginner {
		required = syllabusDaysBeginner
	}

	in.ProjectedDays = int(math.Round(float64(required) / speed))
	in.BufferDays = daysToExam - in.ProjectedDays

	switch {
	case in.BufferDays >= comfortableBufferDays:
		in.Pace = PaceOnTrack
	case in.BufferDays >= 0:
		in.Pace = PaceTight
	default:
		in.Pace = PaceBehind
	}
	return in
}
