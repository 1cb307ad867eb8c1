package repository

import (
	"context"
	"fmt"

	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/repository/dao"
)

type TicketDAO interface {
	Insert(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindRecentByRaffleID(ctx context.Context, raffleID uint, limit int) ([]dao.Ticket, error)
	SumByRaffleID(ctx context.Context, raffleID uint) (dao.TicketSums, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) Create(ctx context.Context, raffleID, buyerID, sellerID uint, amount, cost int) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, dao.Ticket{
		RaffleID: raffleID,
		UserID:   buyerID,
		SoldBy:   sellerID,
		Amount:   amount,
		Cost:     cost,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TicketRepository) FindRecentByRaffle(ctx context.Context, raffleID uint, limit int) ([]domain.Ticket, error) {
	found, err := r.dao.FindRecentByRaffleID(ctx, raffleID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecentByRaffleID -> %w", err)
	}

	tickets := make([]domain.Ticket, len(found))
	for i, t := range found {
		tickets[i] = r.daoToDomain(t)
	}

	return tickets, nil
}

func (r *TicketRepository) SumByRaffle(ctx context.Context, raffleID uint) (domain.TicketTotals, error) {
	sums, err := r.dao.SumByRaffleID(ctx, raffleID)
	if err != nil {
		return domain.TicketTotals{}, fmt.Errorf("r.dao.SumByRaffleID -> %w", err)
	}

	return domain.TicketTotals{
		TotalAmount: sums.TotalAmount,
		TotalCost:   sums.TotalCost,
	}, nil
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:       t.ID,
		RaffleID: t.RaffleID,
		Buyer: domain.User{
			ID:    t.User.ID,
			Email: t.User.Email,
			Name:  t.User.Name,
		},
		Seller: domain.User{
			ID:    t.Seller.ID,
			Email: t.Seller.Email,
			Name:  t.Seller.Name,
		},
		Amount:    t.Amount,
		Cost:      t.Cost,
		CreatedAt: t.CreatedAt,
	}
}
