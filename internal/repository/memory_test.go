package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
)

func TestMemoryUserRepositoryNotFound(t *testing.T) {
	repo := NewMemoryUserRepository()

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserRepositoryListByRoleOrdering(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	names := []string{"c", "a", "b"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, &domain.User{Name: name, Role: domain.RoleAgent}))
	}
	require.NoError(t, repo.Create(ctx, &domain.User{Name: "r", Role: domain.RoleReporter}))

	agents, err := repo.ListByRole(ctx, domain.RoleAgent)
	require.NoError(t, err)
	require.Len(t, agents, 3)
	for i := 1; i < len(agents); i++ {
		assert.Less(t, agents[i-1].ID, agents[i].ID, "ascending identifier order")
	}
	assert.Equal(t, []string{"c", "a", "b"}, []string{agents[0].Name, agents[1].Name, agents[2].Name})
}

func TestMemoryTicketRepositoryIdentifiersNeverReused(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	first := &domain.Ticket{Title: "first", Status: domain.TicketStatusOpen}
	second := &domain.Ticket{Title: "second", Status: domain.TicketStatusOpen}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryTicketRepositoryUpdateUnknown(t *testing.T) {
	repo := NewMemoryTicketRepository()

	err := repo.Update(context.Background(), &domain.Ticket{ID: 99})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTicketRepositoryCountByAgentAndStatus(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()
	now := time.Now()

	add := func(agentID int64, status domain.TicketStatus) {
		require.NoError(t, repo.Create(ctx, &domain.Ticket{
			Title:     "t",
			Status:    status,
			AgentID:   agentID,
			CreatedAt: now,
		}))
	}
	add(1, domain.TicketStatusOpen)
	add(1, domain.TicketStatusOpen)
	add(1, domain.TicketStatusClosed)
	add(2, domain.TicketStatusOpen)

	count, err := repo.CountByAgentAndStatus(ctx, 1, domain.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByAgentAndStatus(ctx, 3, domain.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryTicketRepositoryListByStatus(t *testing.T) {
	repo := NewMemoryTicketRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Ticket{Title: "open", Status: domain.TicketStatusOpen}))
	require.NoError(t, repo.Create(ctx, &domain.Ticket{Title: "closed", Status: domain.TicketStatusClosed}))

	open, err := repo.ListByStatus(ctx, domain.TicketStatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "open", open[0].Title)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
