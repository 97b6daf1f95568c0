package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/stricto/internal/app"
	"github.com/alexanderramin/stricto/internal/history"
	"github.com/alexanderramin/stricto/internal/repository"
)

type leaveService struct {
	store *Store
}

func NewLeaveService(store *Store) LeaveService {
	return &leaveService{store: store}
}

func (s *leaveService) ApplyLeave(ctx context.Context, req app.LeaveRequest) (int, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	if _, err := s.store.profiles.Get(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, &app.ProtocolError{Code: app.ErrProfileMissing, Message: "no profile found, run profile setup first"}
		}
		return 0, fmt.Errorf("loading profile: %w", err)
	}

	days := history.LeaveDays(now, req.Days, req.Type)
	if err := s.store.SaveHistoryDays(ctx, req.UserID, days); err != nil {
		return 0, err
	}
	return len(days), nil
}
