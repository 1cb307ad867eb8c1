package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreateTicketRequest carries one sale. Amount and cost come in as
// strings in the raffle's minor currency unit; the ledger parses them.
type CreateTicketRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Amount string `json:"amount"`
	Cost   string `json:"cost"`
}

func (req *CreateTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Amount, validation.Required, is.Digit),
		validation.Field(&req.Cost, validation.Required, is.Digit),
	)
}
