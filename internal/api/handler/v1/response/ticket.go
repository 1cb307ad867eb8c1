package response

import "github.com/rafflehq/raffle-sales-api/internal/domain"

// ListTicketsResponse pairs the recent slice with totals computed over
// all tickets of the raffle, so the totals stay trustworthy however few
// tickets are rendered.
type ListTicketsResponse struct {
	Tickets []domain.Ticket     `json:"tickets"`
	Totals  domain.TicketTotals `json:"ticketSums"`
}
