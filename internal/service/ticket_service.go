package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/helpdesk/sla-ticket-service/internal/clock"
	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/events"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

// TicketService is the lifecycle engine: it creates tickets (deadline plus
// assignment) and applies status transitions (closure time plus SLA outcome).
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	assignment *AssignmentService
	clock      clock.Clock
	dispatcher events.Dispatcher

	// createMu serializes the agent-load read with the subsequent insert so
	// two concurrent creations cannot both pick the same stale least-busy
	// agent.
	createMu sync.Mutex
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Assignment *AssignmentService
	Clock      clock.Clock
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Type       domain.TicketType
	Title      string
	Priority   domain.TicketPriority
	ReporterID int64
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	c := deps.Clock
	if c == nil {
		c = clock.System{}
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		assignment: deps.Assignment,
		clock:      c,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket builds a new OPEN ticket: dueBy = createdAt + SLA window for
// the priority (HIGH 24h, MEDIUM 48h, LOW 72h), assignee from the assignment
// engine. Fails before any persistence on an unrecognized priority, an
// unknown reporter, or an empty agent directory.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	window, ok := input.Priority.SLAWindow()
	if !ok {
		return nil, apperrors.NewInvalidPriority(string(input.Priority))
	}
	if !input.Type.Valid() {
		return nil, apperrors.NewValidationError("unrecognized ticket type", map[string]any{
			"type": input.Type,
		})
	}

	reporter, err := s.users.GetByID(ctx, input.ReporterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewReporterNotFound(input.ReporterID)
		}
		return nil, apperrors.MapError(err)
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	// The load read happens before the insert, so the new ticket never counts
	// itself.
	agent, openLoad, err := s.assignment.SelectAgent(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	ticket := &domain.Ticket{
		Type:       input.Type,
		Title:      strings.TrimSpace(input.Title),
		Status:     domain.TicketStatusOpen,
		Priority:   input.Priority,
		ReporterID: reporter.ID,
		AgentID:    agent.ID,
		CreatedAt:  now,
		DueBy:      now.Add(window),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Type:       ticket.Type,
			Title:      ticket.Title,
			Priority:   ticket.Priority,
			ReporterID: ticket.ReporterID,
			AgentID:    ticket.AgentID,
			DueBy:      ticket.DueBy,
		},
	})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		Payload: events.TicketAssignedPayload{
			AgentID:  agent.ID,
			OpenLoad: openLoad,
		},
	})
	return ticket, nil
}

// UpdateStatus applies the new status unconditionally; any status-to-status
// transition is accepted, matching the permissive source behavior. Reaching
// RESOLVED or CLOSED stamps closedAt and slaMet (closedAt strictly before
// dueBy); a repeated terminal transition overwrites both.
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID int64, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("unrecognized status", map[string]any{
			"status": newStatus,
		})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewTicketNotFound(ticketID)
		}
		return nil, apperrors.MapError(err)
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if newStatus.Terminal() {
		closedAt := s.clock.Now()
		met := closedAt.Before(ticket.DueBy)
		ticket.ClosedAt = &closedAt
		ticket.SLAMet = &met
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewTicketNotFound(ticketID)
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ClosedAt:  ticket.ClosedAt,
			SLAMet:    ticket.SLAMet,
		},
	})
	return ticket, nil
}

// ListTickets returns every ticket in the store.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
