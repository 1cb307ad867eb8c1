package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRaffleNotFound     = errors.New("raffle not found")
	ErrAssignmentNotFound = errors.New("manager assignment not found")
)

type Raffle struct {
	ID uint `gorm:"primaryKey"`

	Name   string `gorm:"not null"`
	PubKey string `gorm:"unique;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// RaffleManager relates a user to a raffle. At most one row per
// (user, raffle) pair is consulted for authorization.
type RaffleManager struct {
	ID uint `gorm:"primaryKey"`

	UserID   uint   `gorm:"not null;uniqueIndex:idx_raffle_managers_user_raffle"`
	RaffleID uint   `gorm:"not null;uniqueIndex:idx_raffle_managers_user_raffle"`
	Raffle   Raffle `gorm:"foreignKey:RaffleID"`

	Salesperson bool `gorm:"not null;default:false"`
	Admin       bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RaffleDAO struct {
	db *gorm.DB
}

func NewRaffleDAO(db *gorm.DB) *RaffleDAO {
	return &RaffleDAO{
		db: db,
	}
}

func (d *RaffleDAO) FindByPubKey(ctx context.Context, pubKey string) (Raffle, error) {
	var raffle Raffle

	result := d.db.WithContext(ctx).First(&raffle, "pub_key = ?", pubKey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Raffle{}, ErrRaffleNotFound
		}

		return Raffle{}, result.Error
	}

	return raffle, nil
}

// FindByName matches the whole display name case-insensitively.
func (d *RaffleDAO) FindByName(ctx context.Context, name string) (Raffle, error) {
	var raffle Raffle

	result := d.db.WithContext(ctx).First(&raffle, "LOWER(name) = LOWER(?)", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Raffle{}, ErrRaffleNotFound
		}

		return Raffle{}, result.Error
	}

	return raffle, nil
}

func (d *RaffleDAO) FindManager(ctx context.Context, userID, raffleID uint) (RaffleManager, error) {
	var manager RaffleManager

	result := d.db.WithContext(ctx).
		First(&manager, "user_id = ? AND raffle_id = ?", userID, raffleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RaffleManager{}, ErrAssignmentNotFound
		}

		return RaffleManager{}, result.Error
	}

	return manager, nil
}

func (d *RaffleDAO) FindManagersByUserID(ctx context.Context, userID uint) ([]RaffleManager, error) {
	var managers []RaffleManager

	result := d.db.WithContext(ctx).
		Preload("Raffle").
		Where("user_id = ?", userID).
		Find(&managers)
	if result.Error != nil {
		return nil, result.Error
	}

	return managers, nil
}
