package service

import (
	"context"
	"fmt"

	"github.com/rafflehq/raffle-sales-api/internal/domain"
)

type RaffleRepository interface {
	FindManagedByUserID(ctx context.Context, userID uint) ([]domain.ManagedRaffle, error)
}

type RaffleService struct {
	repo RaffleRepository
}

func NewRaffleService(repo RaffleRepository) *RaffleService {
	return &RaffleService{
		repo: repo,
	}
}

// GetManagedRaffles lists the raffles the user holds any manager
// assignment on, with the capability flags attached.
func (s *RaffleService) GetManagedRaffles(ctx context.Context, userID uint) ([]domain.ManagedRaffle, error) {
	raffles, err := s.repo.FindManagedByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindManagedByUserID -> %w", err)
	}

	return raffles, nil
}
