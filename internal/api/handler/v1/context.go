package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rafflehq/raffle-sales-api/internal/api/handler/v1/response"
	"github.com/rafflehq/raffle-sales-api/internal/api/middleware"
	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// getSalespersonFromContext maps the email claim the authenticator
// verified to the acting account. An authenticated email without an
// account is a different failure class from a bad credential, so it is
// logged apart, but both render as the same unauthorized response.
func getSalespersonFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	email := ctx.GetString(middleware.ContextKeyEmail)
	if email == "" {
		zap.L().Warn("no verified email on an authenticated route",
			zap.String("path", ctx.Request.URL.Path),
		)

		return domain.User{}, response.ErrInvalidAuth()
	}

	user, err := uSvc.GetUserByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			zap.L().Warn("authenticated email has no account",
				zap.String("email", email),
			)

			return domain.User{}, response.ErrInvalidAuth()
		}

		err = fmt.Errorf("getSalespersonFromContext -> uSvc.GetUserByEmail -> %w", err)

		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}
