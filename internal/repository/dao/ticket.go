package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Ticket rows are append-only. Nothing in this service updates or
// deletes them.
type Ticket struct {
	ID uint `gorm:"primaryKey"`

	RaffleID uint   `gorm:"not null;index"`
	Raffle   Raffle `gorm:"foreignKey:RaffleID"`

	UserID uint `gorm:"not null"` // buyer
	User   User `gorm:"foreignKey:UserID"`

	SoldBy uint `gorm:"not null"` // salesperson who recorded the sale
	Seller User `gorm:"foreignKey:SoldBy"`

	Amount int `gorm:"not null"`
	Cost   int `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// TicketSums carries the raffle-wide aggregates.
type TicketSums struct {
	TotalAmount int64
	TotalCost   int64
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindRecentByRaffleID(ctx context.Context, raffleID uint, limit int) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Preload("User").
		Preload("Seller").
		Where("raffle_id = ?", raffleID).
		Order("created_at DESC").
		Limit(limit).
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// SumByRaffleID totals amount and cost over every ticket of the
// raffle. COALESCE keeps the zero-ticket case at 0 instead of NULL.
func (d *TicketDAO) SumByRaffleID(ctx context.Context, raffleID uint) (TicketSums, error) {
	var sums TicketSums

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COALESCE(SUM(cost), 0) AS total_cost").
		Where("raffle_id = ?", raffleID).
		Take(&sums)
	if result.Error != nil {
		return TicketSums{}, result.Error
	}

	return sums, nil
}
