package domain

// Goal is the user's exam target.
type Goal struct {
	Exam  string
	Date  string // YYYY-MM-DD or ExamDateOther
	Stage ExamStage
}

// SubjectSplit holds the self-reported proficiency buckets. A subject name
// appears in at most one bucket; absence means average.
type SubjectSplit struct {
	Weak    []string
	Average []string
	Strong  []string
}

// Schedule holds the user's declared availability.
type Schedule struct {
	Hours      int
	Chronotype string
}

// Gamification holds cumulative points, unlocked badge ids, and the
// completed-task counter.
type Gamification struct {
	Points              int
	Badges              []string
	TotalTasksCompleted int
}

// HasBadge reports whether the badge id has already been unlocked.
func (g Gamification) HasBadge(id string) bool {
	for _, b := range g.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// DNA is the user's study profile: goal, proficiencies, schedule, and
// accumulated progress. It is loaded as a snapshot before a protocol run and
// written back as a whole on change.
type DNA struct {
	UserID       string
	Goal         Goal
	Level        UserLevel
	Subjects     SubjectSplit
	Schedule     Schedule
	Gamification Gamification
	// Progress maps a subject key to the set of completed topic ids.
	Progress map[string][]string
}

// Complete reports whether the profile carries the fields the scheduler
// refuses to run without.
func (d *DNA) Complete() bool {
	return d != nil && d.Goal.Exam != "" && d.Level != ""
}

// RecordTopic adds a topic id to the subject's progress set.
func (d *DNA) RecordTopic(subjectKey, topicID string) {
	if subjectKey == "" || topicID == "" {
		return
	}
	if d.Progress == nil {
		d.Progress = make(map[string][]string)
	}
	for _, id := range d.Progress[subjectKey] {
		if id == topicID {
			return
		}
	}
	d.Progress[subjectKey] = append(d.Progress[subjectKey], topicID)
}

// DayRecord is one entry in the study history calendar.
type DayRecord struct {
	Status  DayStatus
	Type    string // leave type, empty otherwise
	Percent int    // share of that day's tasks completed
}

// History maps YYYY-MM-DD date keys to day records.
type History map[string]DayRecord
