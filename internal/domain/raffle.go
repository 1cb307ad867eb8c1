package domain

import "time"

type Raffle struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	PubKey    string    `json:"pub_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ManagerAssignment links a user to a raffle with capability flags.
// Only the Salesperson flag gates ticket reads and writes.
type ManagerAssignment struct {
	ID          uint `json:"id"`
	UserID      uint `json:"user_id"`
	RaffleID    uint `json:"raffle_id"`
	Salesperson bool `json:"salesperson"`
	Admin       bool `json:"admin"`
}

// ManagedRaffle is a raffle together with the capability flags the
// requesting user holds on it.
type ManagedRaffle struct {
	Raffle
	Salesperson bool `json:"salesperson"`
	Admin       bool `json:"admin"`
}
