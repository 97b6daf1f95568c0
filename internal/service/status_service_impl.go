package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stricto/internal/achievement"
	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/history"
	"github.com/alexanderramin/stricto/internal/repository"
	"github.com/alexanderramin/stricto/internal/scheduler"
)

type statusService struct {
	store *Store
}

func NewStatusService(store *Store) StatusService {
	return &statusService{store: store}
}

func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	dna, err := s.store.profiles.Get(ctx, req.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.ProtocolError{Code: app.ErrProfileMissing, Message: "no profile found, run profile setup first"}
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	tasks, err := s.store.tasks.List(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	h, err := s.store.history.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	days := scheduler.DaysToExam(dna.Goal.Date, now)
	insight := history.StrategicInsight(dna, h, days)

	resp := &app.StatusResponse{
		Exam:           dna.Goal.Exam,
		Stage:          dna.Goal.Stage,
		Level:          dna.Level,
		DaysToExam:     days,
		HasTasks:       len(tasks) > 0,
		TotalTasks:     len(tasks),
		CompletedTasks: completed,
		Points:         dna.Gamification.Points,
		Rank:           achievement.Rank(dna.Gamification.TotalTasksCompleted),
		Streak:         history.CurrentStreak(h, now),
		Insight:        insight.Message(),
	}
	if days == scheduler.FarFutureDays {
		resp.DaysToExam = -1
	}
	if len(tasks) > 0 {
		resp.CompliancePct = completed * 100 / len(tasks)
	}
	return resp, nil
}
