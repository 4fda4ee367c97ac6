package service

import (
	"context"
	"time"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

// DashboardAnalytics is the aggregate snapshot served to the dashboard.
//
// ClosedTickets counts only CLOSED, not RESOLVED; the lifecycle engine treats
// both as terminal but the dashboard keeps the narrower filter.
type DashboardAnalytics struct {
	TotalTickets               int64   `json:"totalTickets"`
	OpenTickets                int64   `json:"openTickets"`
	ClosedTickets              int64   `json:"closedTickets"`
	AverageResolutionTimeHours float64 `json:"averageResolutionTimeHours"`
}

// AnalyticsService aggregates tickets into dashboard metrics. Pure reads,
// recomputed fresh on every call.
type AnalyticsService struct {
	tickets repository.TicketRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(tickets repository.TicketRepository) *AnalyticsService {
	return &AnalyticsService{tickets: tickets}
}

// Dashboard computes the snapshot. Each closed ticket's resolution time is
// truncated to whole hours before averaging. With zero CLOSED tickets the
// average is 0.0, which callers must not read as a real resolution time.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardAnalytics, error) {
	all, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	open, err := s.tickets.ListByStatus(ctx, domain.TicketStatusOpen)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	var closedCount int64
	var totalHours int64
	for i := range all {
		ticket := &all[i]
		if ticket.Status != domain.TicketStatusClosed {
			continue
		}
		closedCount++
		if ticket.ClosedAt != nil {
			totalHours += int64(ticket.ClosedAt.Sub(ticket.CreatedAt) / time.Hour)
		}
	}

	avg := 0.0
	if closedCount > 0 {
		avg = float64(totalHours) / float64(closedCount)
	}

	return &DashboardAnalytics{
		TotalTickets:               int64(len(all)),
		OpenTickets:                int64(len(open)),
		ClosedTickets:              closedCount,
		AverageResolutionTimeHours: avg,
	}, nil
}
