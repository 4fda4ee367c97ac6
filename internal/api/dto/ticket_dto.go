package dto

import (
	"time"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
)

// CreateTicketRequest payload. Field names follow the dashboard client
// contract (camelCase).
type CreateTicketRequest struct {
	Type       domain.TicketType     `json:"type"`
	Title      string                `json:"title"`
	Priority   domain.TicketPriority `json:"priority"`
	ReporterID int64                 `json:"reporterId"`
}

// UpdateStatusRequest payload. The status may also arrive as the newStatus
// query parameter, which takes precedence.
type UpdateStatusRequest struct {
	NewStatus domain.TicketStatus `json:"newStatus"`
}

// TicketResponse is the full ticket representation with reporter and agent
// embedded.
type TicketResponse struct {
	ID        int64                 `json:"id"`
	Type      domain.TicketType     `json:"type"`
	Title     string                `json:"title"`
	Status    domain.TicketStatus   `json:"status"`
	Priority  domain.TicketPriority `json:"priority"`
	Reporter  *UserResponse         `json:"reporter,omitempty"`
	Agent     *UserResponse         `json:"agent,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	DueBy     time.Time             `json:"dueBy"`
	ClosedAt  *time.Time            `json:"closedAt,omitempty"`
	SLAMet    *bool                 `json:"slaMet,omitempty"`
}
