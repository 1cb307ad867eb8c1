package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rafflehq/raffle-sales-api/internal/api/handler/v1/request"
	"github.com/rafflehq/raffle-sales-api/internal/api/handler/v1/response"
	"github.com/rafflehq/raffle-sales-api/internal/domain"
	"github.com/rafflehq/raffle-sales-api/internal/service"
)

type TicketService interface {
	ListTickets(ctx context.Context, seller domain.User, raffleIdentifier string) ([]domain.Ticket, domain.TicketTotals, error)
	SellTicket(ctx context.Context, seller domain.User, raffleIdentifier string, sale service.TicketSale) (domain.Ticket, error)
}

type TicketHandler struct {
	svc  TicketService
	uSvc UserService
}

func NewTicketHandler(svc TicketService, uSvc UserService) *TicketHandler {
	return &TicketHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListTickets godoc
// @Summary      List recent tickets and totals for a raffle
// @Description  Returns the newest tickets plus amount/cost totals over every ticket of the raffle. The caller must be a salesperson for it.
// @Tags         tickets
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle public key or hyphenated name"
// @Success      200  {object}  response.ListTicketsResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /raffles/{raffleID}/tickets [get]
// @Security     BearerAuth
func (h *TicketHandler) HandleListTickets(ctx *gin.Context) {
	seller, respErr := getSalespersonFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	identifier := ctx.Param("raffleID")

	tickets, totals, err := h.svc.ListTickets(ctx.Request.Context(), seller, identifier)
	if err != nil {
		h.renderTicketErr(ctx, seller, err, "HandleListTickets")
		return
	}

	if tickets == nil {
		tickets = []domain.Ticket{}
	}

	ctx.JSON(http.StatusOK, response.ListTicketsResponse{
		Tickets: tickets,
		Totals:  totals,
	})
}

// HandleCreateTicket godoc
// @Summary      Record a ticket sale
// @Description  Upserts the buyer by email and appends one immutable ticket for the raffle. The caller must be a salesperson for it.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                       true  "Raffle public key or hyphenated name"
// @Param        request   body      request.CreateTicketRequest  true  "buyer and sale details"
// @Success      201  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /raffles/{raffleID}/tickets [post]
// @Security     BearerAuth
func (h *TicketHandler) HandleCreateTicket(ctx *gin.Context) {
	seller, respErr := getSalespersonFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	identifier := ctx.Param("raffleID")

	ticket, err := h.svc.SellTicket(ctx.Request.Context(), seller, identifier, service.TicketSale{
		BuyerName:  req.Name,
		BuyerEmail: req.Email,
		Amount:     req.Amount,
		Cost:       req.Cost,
	})
	if err != nil {
		h.renderTicketErr(ctx, seller, err, "HandleCreateTicket")
		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// renderTicketErr is the shared error-to-response mapping for both
// ticket operations. The salesperson check renders exactly like an
// authentication failure; only the log line tells them apart.
func (h *TicketHandler) renderTicketErr(ctx *gin.Context, seller domain.User, err error, op string) {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier), errors.Is(err, service.ErrInvalidTicketSale):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrRaffleNotFound):
		response.RenderErr(ctx, response.ErrNotFound("raffle", "identifier", ctx.Param("raffleID")))
	case errors.Is(err, service.ErrNotSalesperson):
		zap.L().Warn("known user lacks salesperson assignment",
			zap.Uint("userID", seller.ID),
			zap.String("raffle", ctx.Param("raffleID")),
		)
		response.RenderErr(ctx, response.ErrInvalidAuth())
	default:
		err = fmt.Errorf("v1.%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
