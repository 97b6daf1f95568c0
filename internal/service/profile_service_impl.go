package service

import (
	"context"

	"github.com/alexanderramin/stricto/internal/domain"
)

type profileService struct {
	store *Store
}

func NewProfileService(store *Store) ProfileService {
	return &profileService{store: store}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.DNA, error) {
	return s.store.LoadProfile(ctx, userID)
}

func (s *profileService) Save(ctx context.Context, dna *domain.DNA) error {
	return s.store.SaveProfile(ctx, dna)
}
