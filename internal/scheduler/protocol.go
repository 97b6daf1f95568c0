package scheduler

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/stricto/internal/brain"
	"github.com/alexanderramin/stricto/internal/domain"
)

const (
	defaultDailyHours = 6

	syllabusBeginner = 30
	syllabusRepeater = 80
)

// Input carries everything a protocol run needs: the profile, the tasks from
// the previous protocol (for diversity), and the reference time.
type Input struct {
	DNA      *domain.DNA
	Previous []domain.Task
	Now      time.Time
}

// Protocol is the outcome of one scheduling run.
type Protocol struct {
	GeneratedAt    time.Time
	DaysToExam     int
	RevisionRatio  float64
	CrisisMode     bool
	Tasks          []domain.Task
	FailedSubjects []domain.Subject
}

// Engine builds daily protocols from generation-server candidates. It is
// stateless; callers own persistence of the result.
type Engine struct {
	client brain.Client
}

// NewEngine creates an Engine backed by the given generation client.
func NewEngine(client brain.Client) *Engine {
	return &Engine{client: client}
}

// GenerateProtocol produces the day's task list. Candidates for all subjects
// are fetched concurrently; a subject whose fetch fails is recorded in
// FailedSubjects and contributes no tasks, so partial generator outages
// degrade the protocol instead of aborting it. The returned task order is
// deterministic for a given set of candidate responses.
func (e *Engine) GenerateProtocol(ctx context.Context, in Input) (*Protocol, error) {
	dna := in.DNA
	days := DaysToExam(dna.Goal.Date, in.Now)
	crisis := CrisisMode(days)
	subjects := PriorityList(dna.Subjects.Weak)
	recent := RecentTopicsFromTasks(in.Previous)

	results := make([][]brain.Candidate, len(subjects))
	failures := make([]bool, len(subjects))

	var wg sync.WaitGroup
	for i, sub := range subjects {
		wg.Add(1)
		go func(i int, sub domain.Subject) {
			defer wg.Done()
			candidates, err := e.client.GenerateTasks(ctx, e.buildRequest(dna, sub, days))
			if err != nil {
				failures[i] = true
				return
			}
			results[i] = candidates
		}(i, sub)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proto := &Protocol{
		GeneratedAt:   in.Now,
		DaysToExam:    days,
		RevisionRatio: RevisionRatio(days),
		CrisisMode:    crisis,
	}

	// Flatten in priority-list order so concurrent completion order never
	// changes the protocol.
	for i, sub := range subjects {
		if failures[i] {
			proto.FailedSubjects = append(proto.FailedSubjects, sub)
			continue
		}
		for _, c := range results[i] {
			if !crisis && recent.Blocks(c.Task) {
				continue
			}
			proto.Tasks = append(proto.Tasks, buildTask(sub, c, in.Now))
		}
	}

	SortProtocol(proto.Tasks, dna.Subjects)
	return proto, nil
}

func (e *Engine) buildRequest(dna *domain.DNA, sub domain.Subject, daysToExam int) brain.TaskRequest {
	req := brain.TaskRequest{
		Subject:           string(sub),
		Level:             string(Classify(sub, dna.Subjects)),
		ExamStage:         string(dna.Goal.Stage),
		UserType:          string(dna.Level),
		SyllabusCompleted: syllabusBeginner,
		DailyHours:        dna.Schedule.Hours,
	}
	if req.ExamStage == "" {
		req.ExamStage = string(domain.StagePrelims)
	}
	if req.UserType == "" {
		req.UserType = string(domain.LevelRepeater)
	}
	if dna.Level == domain.LevelRepeater {
		req.SyllabusCompleted = syllabusRepeater
	}
	if req.DailyHours <= 0 {
		req.DailyHours = defaultDailyHours
	}
	if date := dna.Goal.Date; date != "" && date != domain.ExamDateOther && daysToExam != FarFutureDays {
		req.ExamDate = &date
	}
	return req
}

func buildTask(sub domain.Subject, c brain.Candidate, now time.Time) domain.Task {
	priority := domain.PriorityNormal
	if c.Priority == string(domain.PriorityHigh) {
		priority = domain.PriorityHigh
	}
	var meta *domain.TaskMeta
	if c.Type != "" || c.Strategy != "" || c.TopicID != "" {
		meta = &domain.TaskMeta{
			Type:     c.Type,
			Strategy: c.Strategy,
			TopicID:  c.TopicID,
		}
		if c.TopicID != "" {
			meta.SubjectKey = strings.ToLower(string(sub))
		}
	}
	return domain.NewTask(c.Task, sub, ParseDurationMinutes(c.Duration), priority, meta, now)
}
