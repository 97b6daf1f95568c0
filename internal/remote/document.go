package remote

import (
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

// Document is the wire form of a user's record in the remote store. Field
// names follow the store's existing document schema, so absent sections stay
// absent instead of becoming empty objects.
type Document struct {
	UserDNA *dnaDoc              `json:"userDNA,omitempty"`
	Tasks   []taskDoc            `json:"tasks,omitempty"`
	History map[string]dayRecDoc `json:"history,omitempty"`
}

type dnaDoc struct {
	Goal struct {
		Exam  string `json:"exam"`
		Date  string `json:"date"`
		Stage string `json:"stage"`
	} `json:"goal"`
	Level    string `json:"level"`
	Subjects struct {
		Weak    []string `json:"weak"`
		Average []string `json:"average"`
		Strong  []string `json:"strong"`
	} `json:"subjects"`
	Schedule struct {
		Hours      int    `json:"hours"`
		Chronotype string `json:"chronotype"`
	} `json:"schedule"`
	Gamification struct {
		Points              int      `json:"points"`
		Badges              []string `json:"badges"`
		TotalTasksCompleted int      `json:"totalTasksCompleted"`
	} `json:"gamification"`
	Progress map[string][]string `json:"progress,omitempty"`
}

type taskDoc struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Category  string       `json:"category"`
	Duration  int          `json:"duration"`
	Priority  string       `json:"priority"`
	Meta      *taskMetaDoc `json:"meta,omitempty"`
	Completed bool         `json:"completed"`
	Created   string       `json:"created"`
}

type taskMetaDoc struct {
	Type       string `json:"type,omitempty"`
	Strategy   string `json:"strategy,omitempty"`
	TopicID    string `json:"topicId,omitempty"`
	SubjectKey string `json:"subjectKey,omitempty"`
}

type dayRecDoc struct {
	Status  string `json:"status"`
	Type    string `json:"type,omitempty"`
	Percent int    `json:"percent"`
}

// DNA converts the document's profile section, or nil when absent.
func (d *Document) DNA(userID string) *domain.DNA {
	if d == nil || d.UserDNA == nil {
		return nil
	}
	w := d.UserDNA
	return &domain.DNA{
		UserID: userID,
		Goal: domain.Goal{
			Exam:  w.Goal.Exam,
			Date:  w.Goal.Date,
			Stage: domain.ExamStage(w.Goal.Stage),
		},
		Level: domain.UserLevel(w.Level),
		Subjects: domain.SubjectSplit{
			Weak:    w.Subjects.Weak,
			Average: w.Subjects.Average,
			Strong:  w.Subjects.Strong,
		},
		Schedule: domain.Schedule{
			Hours:      w.Schedule.Hours,
			Chronotype: w.Schedule.Chronotype,
		},
		Gamification: domain.Gamification{
			Points:              w.Gamification.Points,
			Badges:              w.Gamification.Badges,
			TotalTasksCompleted: w.Gamification.TotalTasksCompleted,
		},
		Progress: w.Progress,
	}
}

// TaskList converts the document's task section.
func (d *Document) TaskList() []domain.Task {
	if d == nil {
		return nil
	}
	tasks := make([]domain.Task, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		task := domain.Task{
			ID:        t.ID,
			Title:     t.Title,
			Category:  domain.Subject(t.Category),
			Duration:  t.Duration,
			Priority:  domain.TaskPriority(t.Priority),
			Completed: t.Completed,
		}
		if ts, err := time.Parse(time.RFC3339, t.Created); err == nil {
			task.Created = ts
		}
		if t.Meta != nil {
			task.Meta = &domain.TaskMeta{
				Type:       t.Meta.Type,
				Strategy:   t.Meta.Strategy,
				TopicID:    t.Meta.TopicID,
				SubjectKey: t.Meta.SubjectKey,
			}
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// HistoryMap converts the document's history section.
func (d *Document) HistoryMap() domain.History {
	if d == nil || d.History == nil {
		return nil
	}
	h := make(domain.History, len(d.History))
	for day, rec := range d.History {
		h[day] = domain.DayRecord{
			Status:  domain.DayStatus(rec.Status),
			Type:    rec.Type,
			Percent: rec.Percent,
		}
	}
	return h
}

// NewDocument assembles a full document from domain values. Nil or empty
// sections are omitted from the wire form.
func NewDocument(dna *domain.DNA, tasks []domain.Task, h domain.History) *Document {
	doc := &Document{}
	if dna != nil {
		doc.UserDNA = dnaToDoc(dna)
	}
	if len(tasks) > 0 {
		doc.Tasks = tasksToDoc(tasks)
	}
	if len(h) > 0 {
		doc.History = historyToDoc(h)
	}
	return doc
}

func dnaToDoc(dna *domain.DNA) *dnaDoc {
	var w dnaDoc
	w.Goal.Exam = dna.Goal.Exam
	w.Goal.Date = dna.Goal.Date
	w.Goal.Stage = string(dna.Goal.Stage)
	w.Level = string(dna.Level)
	w.Subjects.Weak = dna.Subjects.Weak
	w.Subjects.Average = dna.Subjects.Average
	w.Subjects.Strong = dna.Subjects.Strong
	w.Schedule.Hours = dna.Schedule.Hours
	w.Schedule.Chronotype = dna.Schedule.Chronotype
	w.Gamification.Points = dna.Gamification.Points
	w.Gamification.Badges = dna.Gamification.Badges
	w.Gamification.TotalTasksCompleted = dna.Gamification.TotalTasksCompleted
	w.Progress = dna.Progress
	return &w
}

func tasksToDoc(tasks []domain.Task) []taskDoc {
	docs := make([]taskDoc, 0, len(tasks))
	for _, t := range tasks {
		doc := taskDoc{
			ID:        t.ID,
			Title:     t.Title,
			Category:  string(t.Category),
			Duration:  t.Duration,
			Priority:  string(t.Priority),
			Completed: t.Completed,
			Created:   t.Created.UTC().Format(time.RFC3339),
		}
		if t.Meta != nil {
			doc.Meta = &taskMetaDoc{
				Type:       t.Meta.Type,
				Strategy:   t.Meta.Strategy,
				TopicID:    t.Meta.TopicID,
				SubjectKey: t.Meta.SubjectKey,
			}
		}
		docs = append(docs, doc)
	}
	return docs
}

func historyToDoc(h domain.History) map[string]dayRecDoc {
	docs := make(map[string]dayRecDoc, len(h))
	for day, rec := range h {
		docs[day] = dayRecDoc{Status: string(rec.Status), Type: rec.Type, Percent: rec.Percent}
	}
	return docs
}
