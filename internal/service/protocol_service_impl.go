package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/brain"
	"github.com/alexanderramin/stricto/internal/domain"
	"github.com/alexanderramin/stricto/internal/scheduler"
)

type protocolService struct {
	store  *Store
	engine *scheduler.Engine
}

func NewProtocolService(store *Store, client brain.Client) ProtocolService {
	return &protocolService{
		store:  store,
		engine: scheduler.NewEngine(client),
	}
}

func (s *protocolService) Initiate(ctx context.Context, req app.ProtocolRequest) (*app.ProtocolResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	dna, err := s.store.LoadProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !dna.Complete() {
		return nil, &app.ProtocolError{
			Code:    app.ErrProfileIncomplete,
			Message: "profile is missing goal or level, finish setup before generating a protocol",
		}
	}

	previous, err := s.store.tasks.List(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading previous protocol: %w", err)
	}

	proto, err := s.engine.GenerateProtocol(ctx, scheduler.Input{
		DNA:      dna,
		Previous: previous,
		Now:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("generating protocol: %w", err)
	}

	// An empty protocol keeps yesterday's list so the user is never left
	// with a blank day because the generator had nothing new.
	if len(proto.Tasks) > 0 {
		if err := s.store.SaveTasks(ctx, req.UserID, proto.Tasks); err != nil {
			return nil, err
		}
	}

	return &app.ProtocolResponse{
		GeneratedAt:    proto.GeneratedAt,
		DaysToExam:     proto.DaysToExam,
		RevisionRatio:  proto.RevisionRatio,
		CrisisMode:     proto.CrisisMode,
		Tasks:          proto.Tasks,
		FailedSubjects: proto.FailedSubjects,
	}, nil
}

func (s *protocolService) Tasks(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := s.store.tasks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}
