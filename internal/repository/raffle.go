package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/repository/dao"
)

var (
	ErrRaffleNotFound     = dao.ErrRaffleNotFound
	ErrAssignmentNotFound = dao.ErrAssignmentNotFound
)

type RaffleDAO interface {
	FindByPubKey(ctx context.Context, pubKey string) (dao.Raffle, error)
	FindByName(ctx context.Context, name string) (dao.Raffle, error)
	FindManager(ctx context.Context, userID, raffleID uint) (dao.RaffleManager, error)
	FindManagersByUserID(ctx context.Context, userID uint) ([]dao.RaffleManager, error)
}

type RaffleRepository struct {
	dao RaffleDAO
}

func NewRaffleRepository(dao RaffleDAO) *RaffleRepository {
	return &RaffleRepository{
		dao: dao,
	}
}

// FindByIdentifier resolves a caller-supplied identifier to exactly one
// raffle. The public key is tried first; on a miss the identifier is
// treated as a slug of the display name, hyphens standing in for
// spaces, matched case-insensitively against the whole name.
func (r *RaffleRepository) FindByIdentifier(ctx context.Context, identifier string) (domain.Raffle, error) {
	found, err := r.dao.FindByPubKey(ctx, identifier)
	if err == nil {
		return r.daoToDomain(found), nil
	}
	if !errors.Is(err, dao.ErrRaffleNotFound) {
		return domain.Raffle{}, fmt.Errorf("r.dao.FindByPubKey -> %w", err)
	}

	name := strings.ReplaceAll(identifier, "-", " ")
	found, err = r.dao.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, dao.ErrRaffleNotFound) {
			return domain.Raffle{}, ErrRaffleNotFound
		}

		return domain.Raffle{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RaffleRepository) FindAssignment(ctx context.Context, userID, raffleID uint) (domain.ManagerAssignment, error) {
	found, err := r.dao.FindManager(ctx, userID, raffleID)
	if err != nil {
		if errors.Is(err, dao.ErrAssignmentNotFound) {
			return domain.ManagerAssignment{}, ErrAssignmentNotFound
		}

		return domain.ManagerAssignment{}, fmt.Errorf("r.dao.FindManager -> %w", err)
	}

	return domain.ManagerAssignment{
		ID:          found.ID,
		UserID:      found.UserID,
		RaffleID:    found.RaffleID,
		Salesperson: found.Salesperson,
		Admin:       found.Admin,
	}, nil
}

func (r *RaffleRepository) FindManagedByUserID(ctx context.Context, userID uint) ([]domain.ManagedRaffle, error) {
	managers, err := r.dao.FindManagersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindManagersByUserID -> %w", err)
	}

	managed := make([]domain.ManagedRaffle, len(managers))
	for i, m := range managers {
		managed[i] = domain.ManagedRaffle{
			Raffle:      r.daoToDomain(m.Raffle),
			Salesperson: m.Salesperson,
			Admin:       m.Admin,
		}
	}

	return managed, nil
}

func (r *RaffleRepository) daoToDomain(raffle dao.Raffle) domain.Raffle {
	return domain.Raffle{
		ID:        raffle.ID,
		Name:      raffle.Name,
		PubKey:    raffle.PubKey,
		CreatedAt: raffle.CreatedAt,
		UpdatedAt: raffle.UpdatedAt,
	}
}
