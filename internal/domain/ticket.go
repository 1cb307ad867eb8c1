package domain

import "time"

// Ticket is an immutable record of one raffle-entry sale. Amount and
// cost are in the raffle's minor currency unit.
type Ticket struct {
	ID        uint      `json:"id"`
	RaffleID  uint      `json:"raffle_id"`
	Buyer     User      `json:"buyer"`
	Seller    User      `json:"seller"`
	Amount    int       `json:"amount"`
	Cost      int       `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketTotals aggregates every ticket of a raffle, not just the
// recent slice returned alongside it.
type TicketTotals struct {
	TotalAmount int64 `json:"totalAmount"`
	TotalCost   int64 `json:"totalCost"`
}
