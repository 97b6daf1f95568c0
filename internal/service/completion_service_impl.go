package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stricto/internal/achievement"
	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/history"
	"github.com/alexanderramin/stricto/internal/repository"
)

type completionService struct {
	store *Store
}

func NewCompletionService(store *Store) CompletionService {
	return &completionService{store: store}
}

// Complete works against the local cache only. The remote document is
// refreshed at protocol time; re-reading it here could roll back completions
// that never reached the mirror.
func (s *completionService) Complete(ctx context.Context, req app.CompleteRequest) (*app.CompleteResponse, error) {
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

	task, err := s.store.tasks.GetByID(ctx, req.UserID, req.TaskID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &app.ProtocolError{Code: app.ErrTaskNotFound, Message: "task not in today's protocol"}
	}
	if err != nil {
		return nil, fmt.Errorf("loading task: %w", err)
	}

	h, err := s.store.history.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	if task.Completed {
		// Completing twice awards nothing.
		return &app.CompleteResponse{
			Task:        *task,
			TotalPoints: dna.Gamification.Points,
			Streak:      history.CurrentStreak(h, now),
		}, nil
	}

	if err := s.store.tasks.SetCompleted(ctx, req.UserID, req.TaskID, true); err != nil {
		return nil, fmt.Errorf("marking task done: %w", err)
	}
	task.Completed = true

	tasks, err := s.store.tasks.List(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	dayKey := history.DayKey(now)
	h = history.RecordCompletion(h, now, completed, len(tasks))
	if err := s.store.SaveHistoryDays(ctx, req.UserID, domain.History{dayKey: h[dayKey]}); err != nil {
		return nil, err
	}

	streak := history.CurrentStreak(h, now)
	result := achievement.OnTaskCompleted(&dna.Gamification, streak)

	if task.Meta != nil {
		dna.RecordTopic(task.Meta.SubjectKey, task.Meta.TopicID)
	}

	if err := s.store.SaveProfile(ctx, dna); err != nil {
		return nil, err
	}
	if s.store.remote != nil {
		if err := s.store.remote.SaveTasks(ctx, req.UserID, tasks); err != nil {
			s.store.observer.PersistenceDegraded("save_tasks", err)
		}
	}

	resp := &app.CompleteResponse{
		Task:          *task,
		PointsAwarded: result.PointsAwarded,
		TotalPoints:   dna.Gamification.Points,
		Streak:        streak,
	}
	for _, b := range result.NewBadges {
		resp.NewBadges = append(resp.NewBadges, app.Badge{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Unlocked:    true,
		})
	}
	return resp, nil
}
