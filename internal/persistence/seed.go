package persistence

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/helpdesk/sla-ticket-service/internal/clock"
	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
)

// SeedSampleData populates an empty directory with two reporters, two agents
// and five tickets across the lifecycle. A non-empty directory is left
// untouched.
func SeedSampleData(ctx context.Context, users repository.UserRepository, tickets repository.TicketRepository, clk clock.Clock, logger *zap.Logger) error {
	existing, err := users.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	reporter1 := &domain.User{Name: "John Doe", Email: "john.doe@company.com", Role: domain.RoleReporter, Status: domain.UserStatusActive}
	reporter2 := &domain.User{Name: "Jane Smith", Email: "jane.smith@company.com", Role: domain.RoleReporter, Status: domain.UserStatusActive}
	agent1 := &domain.User{Name: "Mike Johnson", Email: "mike.johnson@company.com", Role: domain.RoleAgent, Status: domain.UserStatusActive}
	agent2 := &domain.User{Name: "Sarah Wilson", Email: "sarah.wilson@company.com", Role: domain.RoleAgent, Status: domain.UserStatusActive}
	for _, user := range []*domain.User{reporter1, reporter2, agent1, agent2} {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}

	samples := []struct {
		title    string
		kind     domain.TicketType
		priority domain.TicketPriority
		status   domain.TicketStatus
		reporter *domain.User
		agent    *domain.User
	}{
		{"Login page not loading", domain.TicketTypeBug, domain.TicketPriorityHigh, domain.TicketStatusOpen, reporter1, agent1},
		{"Add dark mode feature", domain.TicketTypeFeature, domain.TicketPriorityMedium, domain.TicketStatusInProgress, reporter2, agent2},
		{"Password reset email not working", domain.TicketTypeBug, domain.TicketPriorityHigh, domain.TicketStatusResolved, reporter1, agent1},
		{"Update user profile API", domain.TicketTypeMaintenance, domain.TicketPriorityLow, domain.TicketStatusOpen, reporter2, agent1},
		{"Help with account setup", domain.TicketTypeSupport, domain.TicketPriorityMedium, domain.TicketStatusClosed, reporter1, agent2},
	}

	now := clk.Now()
	for _, sample := range samples {
		createdAt := now.Add(-time.Duration(rand.Intn(10*24)) * time.Hour)
		window, _ := sample.priority.SLAWindow()
		ticket := &domain.Ticket{
			Type:       sample.kind,
			Title:      sample.title,
			Status:     sample.status,
			Priority:   sample.priority,
			ReporterID: sample.reporter.ID,
			AgentID:    sample.agent.ID,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
			DueBy:      createdAt.Add(window),
		}
		if sample.status.Terminal() {
			closedAt := createdAt.Add(time.Duration(rand.Intn(48)) * time.Hour)
			met := closedAt.Before(ticket.DueBy)
			ticket.ClosedAt = &closedAt
			ticket.SLAMet = &met
		}
		if err := tickets.Create(ctx, ticket); err != nil {
			return err
		}
	}

	logger.Info("sample data seeded", zap.Int("users", 4), zap.Int("tickets", len(samples)))
	return nil
}
