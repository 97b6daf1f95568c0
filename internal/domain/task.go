package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskMeta carries generator context attached to a task. TopicID and
// SubjectKey are set only when the generator tied the task to a syllabus
// topic; completion then records the topic in the profile's progress map.
type TaskMeta struct {
	Type       string
	Strategy   string
	TopicID    string
	SubjectKey string
}

// Task is one directive in a daily protocol. Tasks are created only by the
// scheduler (the whole list is replaced each run) and the only field mutated
// afterwards is Completed.
type Task struct {
	ID        string
	Title     string
	Category  Subject
	Duration  int // minutes
	Priority  TaskPriority
	Meta      *TaskMeta
	Completed bool
	Created   time.Time
}

// NewTask builds a task with a fresh id. An empty title gets the standard
// fallback so a malformed candidate never produces an unnamed directive.
func NewTask(title string, category Subject, durationMin int, priority TaskPriority, meta *TaskMeta, now time.Time) Task {
	if title == "" {
		title = "Unknown Mission"
	}
	if priority == "" {
		priority = PriorityNormal
	}
	return Task{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Duration:  durationMin,
		Priority:  priority,
		Meta:      meta,
		Completed: false,
		Created:   now,
	}
}
