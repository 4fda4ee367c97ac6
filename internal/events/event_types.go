package events

import (
	"time"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Type       domain.TicketType     `json:"type"`
	Title      string                `json:"title"`
	Priority   domain.TicketPriority `json:"priority"`
	ReporterID int64                 `json:"reporter_id"`
	AgentID    int64                 `json:"agent_id"`
	DueBy      time.Time             `json:"due_by"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AgentID  int64 `json:"agent_id"`
	OpenLoad int64 `json:"open_load"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	ClosedAt  *time.Time          `json:"closed_at,omitempty"`
	SLAMet    *bool               `json:"sla_met,omitempty"`
}
