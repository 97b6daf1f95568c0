package testutil

import (
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

// DNAOption mutates a fixture profile.
type DNAOption func(*domain.DNA)

func WithExamDate(date string) DNAOption {
	return func(d *domain.DNA) {
		d.Goal.Date = date
	}
}

func WithLevel(level domain.UserLevel) DNAOption {
	return func(d *domain.DNA) {
		d.Level = level
	}
}

func WithWeak(subjects ...string) DNAOption {
	return func(d *domain.DNA) {
		d.Subjects.Weak = subjects
	}
}

func WithStrong(subjects ...string) DNAOption {
	return func(d *domain.DNA) {
		d.Subjects.Strong = subjects
	}
}

func WithGamification(g domain.Gamification) DNAOption {
	return func(d *domain.DNA) {
		d.Gamification = g
	}
}

// NewDNA builds a complete repeater profile ready for protocol generation.
func NewDNA(userID string, opts ...DNAOption) *domain.DNA {
	dna := &domain.DNA{
		UserID: userID,
		Goal: domain.Goal{
			Exam:  "SSC CGL",
			Date:  "2026-12-31",
			Stage: domain.StagePrelims,
		},
		Level: domain.LevelRepeater,
		Subjects: domain.SubjectSplit{
			Weak:   []string{"MATH"},
			Strong: []string{"ENGLISH"},
		},
		Schedule: domain.Schedule{Hours: 6},
	}
	for _, opt := range opts {
		opt(dna)
	}
	return dna
}

// NewTask builds a protocol task with sensible defaults.
func NewTask(title string, subject domain.Subject, opts ...func(*domain.Task)) domain.Task {
	task := domain.NewTask(title, subject, 45, domain.PriorityNormal, nil, time.Now())
	for _, opt := range opts {
		opt(&task)
	}
	return task
}

func Completed() func(*domain.Task) {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithMeta(meta *domain.TaskMeta) func(*domain.Task) {
	return func(t *domain.Task) {
		t.Meta = meta
	}
}
