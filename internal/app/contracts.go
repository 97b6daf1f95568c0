package app

import (
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

// ProtocolRequest asks for a fresh daily protocol.
type ProtocolRequest struct {
	UserID string
	// Now overrides the clock (tests); nil uses time.Now().
	Now *time.Time
}

// ProtocolResponse is the outcome of a protocol run. An empty Tasks slice is
// a valid outcome ("no new directives") and is distinct from never having
// run, which the caller sees as an absent task list.
type ProtocolResponse struct {
	GeneratedAt   time.Time
	DaysToExam    int
	RevisionRatio float64
	CrisisMode    bool
	Tasks         []domain.Task
	// FailedSubjects lists subjects whose generator call yielded nothing due
	// to an error; informational only.
	FailedSubjects []domain.Subject
}

// NoNewDirectives reports whether the run produced an empty protocol.
func (r *ProtocolResponse) NoNewDirectives() bool {
	return len(r.Tasks) == 0
}

// CompleteRequest marks one task of today's protocol as done.
type CompleteRequest struct {
	UserID string
	TaskID string
	// Now overrides the clock (tests); nil uses time.Now().
	Now *time.Time
}

// CompleteResponse reports the gamification outcome of a completion.
type CompleteResponse struct {
	Task          domain.Task
	PointsAwarded int
	TotalPoints   int
	NewBadges     []Badge
	Streak        int
}

// Badge is one unlocked or displayable achievement.
type Badge struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

// StatusRequest asks for the day's standing and the strategic insight.
type StatusRequest struct {
	UserID string
	Now    *time.Time
}

// StatusResponse summarizes the current protocol, countdown, and projection.
type StatusResponse struct {
	Exam           string
	Stage          domain.ExamStage
	Level          domain.UserLevel
	DaysToExam     int  // -1 when no concrete date is set
	HasTasks       bool // false = protocol not yet run today
	TotalTasks     int
	CompletedTasks int
	CompliancePct  int
	Points         int
	Rank           string
	Streak         int
	Insight        string
}

// LeaveRequest marks upcoming days as leave in the study history.
type LeaveRequest struct {
	UserID string
	Days   int
	Type   string
	Now    *time.Time
}
