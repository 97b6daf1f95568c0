package importer

import (
	"time"

	"github.com/alexanderramin/stricto/internal/domain"
)

// ToDomain converts a validated backup into domain values bound to userID.
func ToDomain(schema *BackupSchema, userID string) (*domain.DNA, []domain.Task, domain.History) {
	return profileToDomain(schema.UserDNA, userID), tasksToDomain(schema.Tasks), historyToDomain(schema.History)
}

// FromDomain builds a backup from domain values.
func FromDomain(dna *domain.DNA, tasks []domain.Task, h domain.History) *BackupSchema {
	schema := &BackupSchema{}
	if dna != nil {
		schema.UserDNA = profileFromDomain(dna)
	}
	for _, t := range tasks {
		schema.Tasks = append(schema.Tasks, taskFromDomain(t))
	}
	if len(h) > 0 {
		schema.History = make(map[string]DayImport, len(h))
		for day, rec := range h {
			schema.History[day] = DayImport{Status: string(rec.Status), Type: rec.Type, Percent: rec.Percent}
		}
	}
	return schema
}

func profileToDomain(p *ProfileImport, userID string) *domain.DNA {
	if p == nil {
		return nil
	}
	return &domain.DNA{
		UserID: userID,
		Goal: domain.Goal{
			Exam:  p.Goal.Exam,
			Date:  p.Goal.Date,
			Stage: domain.ExamStage(p.Goal.Stage),
		},
		Level: domain.UserLevel(p.Level),
		Subjects: domain.SubjectSplit{
			Weak:    p.Subjects.Weak,
			Average: p.Subjects.Average,
			Strong:  p.Subjects.Strong,
		},
		Schedule: domain.Schedule{
			Hours:      p.Schedule.Hours,
			Chronotype: p.Schedule.Chronotype,
		},
		Gamification: domain.Gamification{
			Points:              p.Gamification.Points,
			Badges:              p.Gamification.Badges,
			TotalTasksCompleted: p.Gamification.TotalTasksCompleted,
		},
		Progress: p.Progress,
	}
}

func profileFromDomain(dna *domain.DNA) *ProfileImport {
	var p ProfileImport
	p.Goal.Exam = dna.Goal.Exam
	p.Goal.Date = dna.Goal.Date
	p.Goal.Stage = string(dna.Goal.Stage)
	p.Level = string(dna.Level)
	p.Subjects.Weak = dna.Subjects.Weak
	p.Subjects.Average = dna.Subjects.Average
	p.Subjects.Strong = dna.Subjects.Strong
	p.Schedule.Hours = dna.Schedule.Hours
	p.Schedule.Chronotype = dna.Schedule.Chronotype
	p.Gamification.Points = dna.Gamification.Points
	p.Gamification.Badges = dna.Gamification.Badges
	p.Gamification.TotalTasksCompleted = dna.Gamification.TotalTasksCompleted
	p.Progress = dna.Progress
	return &p
}

func tasksToDomain(tasks []TaskImport) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		task := domain.Task{
			ID:        t.ID,
			Title:     t.Title,
			Category:  domain.Subject(t.Category),
			Duration:  t.Duration,
			Priority:  domain.TaskPriority(t.Priority),
			Completed: t.Completed,
		}
		if task.Priority == "" {
			task.Priority = domain.PriorityNormal
		}
		if t.Meta != nil {
			task.Meta = &domain.TaskMeta{
				Type:       t.Meta.Type,
				Strategy:   t.Meta.Strategy,
				TopicID:    t.Meta.TopicID,
				SubjectKey: t.Meta.SubjectKey,
			}
		}
		if t.Created != "" {
			if created, err := time.Parse(time.RFC3339, t.Created); err == nil {
				task.Created = created
			}
		}
		out = append(out, task)
	}
	return out
}

func taskFromDomain(t domain.Task) TaskImport {
	task := TaskImport{
		ID:        t.ID,
		Title:     t.Title,
		Category:  string(t.Category),
		Duration:  t.Duration,
		Priority:  string(t.Priority),
		Completed: t.Completed,
	}
	if !t.Created.IsZero() {
		task.Created = t.Created.UTC().Format(time.RFC3339)
	}
	if t.Meta != nil {
		task.Meta = &struct {
			Type       string `json:"type,omitempty"`
			Strategy   string `json:"strategy,omitempty"`
			TopicID    string `json:"topicId,omitempty"`
			SubjectKey string `json:"subjectKey,omitempty"`
		}{
			Type:       t.Meta.Type,
			Strategy:   t.Meta.Strategy,
			TopicID:    t.Meta.TopicID,
			SubjectKey: t.Meta.SubjectKey,
		}
	}
	return task
}

func historyToDomain(h map[string]DayImport) domain.History {
	if len(h) == 0 {
		return nil
	}
	out := make(domain.History, len(h))
	for day, rec := range h {
		out[day] = domain.DayRecord{
			Status:  domain.DayStatus(rec.Status),
			Type:    rec.Type,
			Percent: rec.Percent,
		}
	}
	return out
}
