package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/repository"
)

const recentTicketsLimit = 20

var (
	ErrRaffleNotFound    = repository.ErrRaffleNotFound
	ErrUpsertNoResult    = repository.ErrUpsertNoResult
	ErrNotSalesperson    = errors.New("user is not a salesperson for this raffle")
	ErrInvalidIdentifier = errors.New("raffle identifier is missing or blank")
	ErrInvalidTicketSale = errors.New("ticket sale has missing or malformed fields")
)

type TicketRepository interface {
	Create(ctx context.Context, raffleID, buyerID, sellerID uint, amount, cost int) (domain.Ticket, error)
	FindRecentByRaffle(ctx context.Context, raffleID uint, limit int) ([]domain.Ticket, error)
	SumByRaffle(ctx context.Context, raffleID uint) (domain.TicketTotals, error)
}

type TicketRaffleRepository interface {
	FindByIdentifier(ctx context.Context, identifier string) (domain.Raffle, error)
	FindAssignment(ctx context.Context, userID, raffleID uint) (domain.ManagerAssignment, error)
}

type BuyerRepository interface {
	Upsert(ctx context.Context, name, email string) (domain.User, error)
}

// TicketSale is the write input for one ticket. Amount and cost arrive
// as the strings the caller supplied and are parsed here.
type TicketSale struct {
	BuyerName  string
	BuyerEmail string
	Amount     string
	Cost       string
}

type TicketService struct {
	repo    TicketRepository
	raffles TicketRaffleRepository
	buyers  BuyerRepository
}

func NewTicketService(repo TicketRepository, raffles TicketRaffleRepository, buyers BuyerRepository) *TicketService {
	return &TicketService{
		repo:    repo,
		raffles: raffles,
		buyers:  buyers,
	}
}

// ListTickets returns the newest tickets of the raffle plus totals over
// all of its tickets. The caller must hold a salesperson assignment.
func (s *TicketService) ListTickets(ctx context.Context, seller domain.User, raffleIdentifier string) ([]domain.Ticket, domain.TicketTotals, error) {
	raffle, err := s.resolveAndAuthorize(ctx, seller, raffleIdentifier)
	if err != nil {
		return nil, domain.TicketTotals{}, err
	}

	tickets, err := s.repo.FindRecentByRaffle(ctx, raffle.ID, recentTicketsLimit)
	if err != nil {
		return nil, domain.TicketTotals{}, fmt.Errorf("s.repo.FindRecentByRaffle -> %w", err)
	}

	totals, err := s.repo.SumByRaffle(ctx, raffle.ID)
	if err != nil {
		return nil, domain.TicketTotals{}, fmt.Errorf("s.repo.SumByRaffle -> %w", err)
	}

	return tickets, totals, nil
}

// SellTicket records one sale: buyer upsert first, then the immutable
// ticket row. The two writes are separate atomic steps; a failure in
// between leaves only the idempotent upsert behind.
func (s *TicketService) SellTicket(ctx context.Context, seller domain.User, raffleIdentifier string, sale TicketSale) (domain.Ticket, error) {
	raffle, err := s.resolveAndAuthorize(ctx, seller, raffleIdentifier)
	if err != nil {
		return domain.Ticket{}, err
	}

	if strings.TrimSpace(sale.BuyerName) == "" || strings.TrimSpace(sale.BuyerEmail) == "" {
		return domain.Ticket{}, ErrInvalidTicketSale
	}

	amount, err := parseMinorUnits(sale.Amount)
	if err != nil {
		return domain.Ticket{}, ErrInvalidTicketSale
	}
	cost, err := parseMinorUnits(sale.Cost)
	if err != nil {
		return domain.Ticket{}, ErrInvalidTicketSale
	}

	buyer, err := s.buyers.Upsert(ctx, sale.BuyerName, sale.BuyerEmail)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.buyers.Upsert -> %w", err)
	}

	ticket, err := s.repo.Create(ctx, raffle.ID, buyer.ID, seller.ID, amount, cost)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return ticket, nil
}

// resolveAndAuthorize is the shared read/write gate: same identifier
// resolution and the same salesperson check for both operations.
func (s *TicketService) resolveAndAuthorize(ctx context.Context, seller domain.User, raffleIdentifier string) (domain.Raffle, error) {
	if strings.TrimSpace(raffleIdentifier) == "" {
		return domain.Raffle{}, ErrInvalidIdentifier
	}

	raffle, err := s.raffles.FindByIdentifier(ctx, raffleIdentifier)
	if err != nil {
		if errors.Is(err, repository.ErrRaffleNotFound) {
			return domain.Raffle{}, ErrRaffleNotFound
		}

		return domain.Raffle{}, fmt.Errorf("s.raffles.FindByIdentifier -> %w", err)
	}

	assignment, err := s.raffles.FindAssignment(ctx, seller.ID, raffle.ID)
	if err != nil {
		// A missing relation means no access, not a server fault.
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return domain.Raffle{}, ErrNotSalesperson
		}

		return domain.Raffle{}, fmt.Errorf("s.raffles.FindAssignment -> %w", err)
	}

	if !assignment.Salesperson {
		return domain.Raffle{}, ErrNotSalesperson
	}

	return raffle, nil
}

func parseMinorUnits(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if parsed < 0 {
		return 0, fmt.Errorf("negative value %d", parsed)
	}

	return parsed, nil
}
