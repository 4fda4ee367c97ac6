package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk/sla-ticket-service/internal/api/dto"
	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	"github.com/helpdesk/sla-ticket-service/internal/service"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

// TicketsHandler exposes the lifecycle and analytics engines over HTTP.
type TicketsHandler struct {
	tickets   *service.TicketService
	analytics *service.AnalyticsService
	users     repository.UserRepository
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService, analytics *service.AnalyticsService, users repository.UserRepository) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, analytics: analytics, users: users}
}

// CreateTicket POST /api/v1/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	ticket, err := h.tickets.CreateTicket(c.UserContext(), service.TicketCreateInput{
		Type:       req.Type,
		Title:      req.Title,
		Priority:   req.Priority,
		ReporterID: req.ReporterID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(h.ticketResponse(c.UserContext(), ticket))
}

// ListTickets GET /api/v1/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListTickets(c.UserContext())
	if err != nil {
		return err
	}
	resolver := newUserResolver(h.users)
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, h.buildResponse(c.UserContext(), &tickets[i], resolver))
	}
	return c.JSON(items)
}

// UpdateStatus PUT /api/v1/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}

	newStatus := domain.TicketStatus(c.Query("newStatus"))
	if newStatus == "" {
		var req dto.UpdateStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
		newStatus = req.NewStatus
	}

	ticket, err := h.tickets.UpdateStatus(c.UserContext(), id, newStatus)
	if err != nil {
		return err
	}
	return c.JSON(h.ticketResponse(c.UserContext(), ticket))
}

// Dashboard GET /api/v1/tickets/dashboard.
func (h *TicketsHandler) Dashboard(c *fiber.Ctx) error {
	snapshot, err := h.analytics.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

func (h *TicketsHandler) ticketResponse(ctx context.Context, ticket *domain.Ticket) dto.TicketResponse {
	return h.buildResponse(ctx, ticket, newUserResolver(h.users))
}

func (h *TicketsHandler) buildResponse(ctx context.Context, ticket *domain.Ticket, resolver *userResolver) dto.TicketResponse {
	return dto.TicketResponse{
		ID:        ticket.ID,
		Type:      ticket.Type,
		Title:     ticket.Title,
		Status:    ticket.Status,
		Priority:  ticket.Priority,
		Reporter:  resolver.resolve(ctx, ticket.ReporterID),
		Agent:     resolver.resolve(ctx, ticket.AgentID),
		CreatedAt: ticket.CreatedAt,
		DueBy:     ticket.DueBy,
		ClosedAt:  ticket.ClosedAt,
		SLAMet:    ticket.SLAMet,
	}
}

// userResolver memoizes directory lookups while a single response is built.
type userResolver struct {
	users repository.UserRepository
	seen  map[int64]*dto.UserResponse
}

func newUserResolver(users repository.UserRepository) *userResolver {
	return &userResolver{users: users, seen: make(map[int64]*dto.UserResponse)}
}

func (r *userResolver) resolve(ctx context.Context, id int64) *dto.UserResponse {
	if cached, ok := r.seen[id]; ok {
		return cached
	}
	user, err := r.users.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		r.seen[id] = nil
		return nil
	}
	resp := &dto.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
	r.seen[id] = resp
	return resp
}
