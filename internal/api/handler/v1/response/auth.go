package response

import "github.com/rafflehq/raffle-sales-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
