package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Valid reports whether the status is one of the known values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Terminal reports whether reaching this status fixes ClosedAt and SLAMet.
// Both RESOLVED and CLOSED count; the dashboard deliberately uses the
// narrower CLOSED-only filter.
func (s TicketStatus) Terminal() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

// TicketPriority determines the SLA window.
type TicketPriority string

const (
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityLow    TicketPriority = "LOW"
)

// SLAWindow returns the due-by window for the priority. There is no default
// bucket: an unrecognized priority returns ok=false and must be rejected
// before a ticket is built.
func (p TicketPriority) SLAWindow() (time.Duration, bool) {
	switch p {
	case TicketPriorityHigh:
		return 24 * time.Hour, true
	case TicketPriorityMedium:
		return 48 * time.Hour, true
	case TicketPriorityLow:
		return 72 * time.Hour, true
	}
	return 0, false
}

// TicketType classifies the request. Nothing in the lifecycle depends on it.
type TicketType string

const (
	TicketTypeBug         TicketType = "BUG"
	TicketTypeFeature     TicketType = "FEATURE"
	TicketTypeMaintenance TicketType = "MAINTENANCE"
	TicketTypeSupport     TicketType = "SUPPORT"
)

// Valid reports whether the type is one of the known values.
func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeBug, TicketTypeFeature, TicketTypeMaintenance, TicketTypeSupport:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests.
//
// CreatedAt and DueBy are set once at creation; DueBy is never recomputed.
// ClosedAt and SLAMet stay nil until a terminal transition occurs.
type Ticket struct {
	ID         int64
	Type       TicketType
	Title      string
	Status     TicketStatus
	Priority   TicketPriority
	ReporterID int64
	AgentID    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DueBy      time.Time
	ClosedAt   *time.Time
	SLAMet     *bool
}
