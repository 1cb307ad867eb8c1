package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafflehq/raffle-sales-api/internal/api/handler/v1/response"
	"github.com/rafflehq/raffle-sales-api/internal/domain"
)

type RaffleService interface {
	GetManagedRaffles(ctx context.Context, userID uint) ([]domain.ManagedRaffle, error)
}

type RaffleHandler struct {
	svc  RaffleService
	uSvc UserService
}

func NewRaffleHandler(svc RaffleService, uSvc UserService) *RaffleHandler {
	return &RaffleHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetRaffles godoc
// @Summary      List the caller's raffles
// @Description  Returns the raffles the authenticated user holds a manager assignment on, with capability flags.
// @Tags         raffles
// @Produce      json
// @Success      200  {array}   domain.ManagedRaffle
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /raffles [get]
// @Security     BearerAuth
func (h *RaffleHandler) HandleGetRaffles(ctx *gin.Context) {
	user, respErr := getSalespersonFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	raffles, err := h.svc.GetManagedRaffles(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRaffles -> h.svc.GetManagedRaffles -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if raffles == nil {
		raffles = []domain.ManagedRaffle{}
	}

	ctx.JSON(http.StatusOK, raffles)
}
