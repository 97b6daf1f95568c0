package domain

type Subject string

const (
	SubjectMath      Subject = "MATH"
	SubjectReasoning Subject = "REASONING"
	SubjectEnglish   Subject = "ENGLISH"
	SubjectGA        Subject = "GA"
)

// CanonicalSubjects is the fixed fallback order for the daily protocol.
// Every protocol run covers each of these exactly once.
var CanonicalSubjects = []Subject{SubjectMath, SubjectReasoning, SubjectEnglish, SubjectGA}

type Proficiency string

const (
	ProficiencyWeak    Proficiency = "weak"
	ProficiencyAverage Proficiency = "average"
	ProficiencyStrong  Proficiency = "strong"
)

type UserLevel string

const (
	LevelBeginner UserLevel = "beginner"
	LevelRepeater UserLevel = "repeater"
)

type ExamStage string

const (
	StagePrelims ExamStage = "Prelims"
	StageMains   ExamStage = "Mains"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityNormal TaskPriority = "normal"
)

// DayStatus classifies a calendar day in the study history.
type DayStatus string

const (
	DayFull    DayStatus = "full"
	DayPartial DayStatus = "partial"
	DayMissed  DayStatus = "missed"
	DayLeave   DayStatus = "leave"
)

// ExamDateOther marks a goal without a concrete exam date.
const ExamDateOther = "other"
