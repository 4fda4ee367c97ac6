package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

// fakeClock pins time for lifecycle tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

type testEnv struct {
	users      *repository.MemoryUserRepository
	tickets    *repository.MemoryTicketRepository
	clock      *fakeClock
	assignment *AssignmentService
	lifecycle  *TicketService
	analytics  *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := repository.NewMemoryUserRepository()
	tickets := repository.NewMemoryTicketRepository()
	clk := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	assignment := NewAssignmentService(AssignmentDependencies{
		TicketRepo: tickets,
		UserRepo:   users,
	})
	return &testEnv{
		users:      users,
		tickets:    tickets,
		clock:      clk,
		assignment: assignment,
		lifecycle: NewTicketService(TicketDependencies{
			TicketRepo: tickets,
			UserRepo:   users,
			Assignment: assignment,
			Clock:      clk,
		}),
		analytics: NewAnalyticsService(tickets),
	}
}

func (e *testEnv) addUser(t *testing.T, name string, role domain.UserRole) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Email: name + "@example.com", Role: role, Status: domain.UserStatusActive}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) addOpenTickets(t *testing.T, agentID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		now := e.clock.Now()
		require.NoError(t, e.tickets.Create(context.Background(), &domain.Ticket{
			Type:       domain.TicketTypeSupport,
			Title:      "backlog",
			Status:     domain.TicketStatusOpen,
			Priority:   domain.TicketPriorityMedium,
			ReporterID: 0,
			AgentID:    agentID,
			CreatedAt:  now,
			DueBy:      now.Add(48 * time.Hour),
		}))
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %T: %v", err, err)
	require.Equal(t, code, domainErr.Code)
}
