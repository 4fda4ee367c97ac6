package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

func TestSelectAgentPicksLowestOpenLoad(t *testing.T) {
	env := newTestEnv(t)
	busy := env.addUser(t, "busy-agent", domain.RoleAgent)
	idle := env.addUser(t, "idle-agent", domain.RoleAgent)
	env.addOpenTickets(t, busy.ID, 3)

	agent, load, err := env.assignment.SelectAgent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, idle.ID, agent.ID)
	assert.Equal(t, int64(0), load)
}

func TestSelectAgentTieBreaksOnDirectoryOrder(t *testing.T) {
	env := newTestEnv(t)
	first := env.addUser(t, "agent-one", domain.RoleAgent)
	second := env.addUser(t, "agent-two", domain.RoleAgent)
	env.addOpenTickets(t, first.ID, 2)
	env.addOpenTickets(t, second.ID, 2)

	agent, load, err := env.assignment.SelectAgent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, agent.ID, "first agent by ascending id wins ties")
	assert.Equal(t, int64(2), load)
}

func TestSelectAgentIgnoresNonOpenTickets(t *testing.T) {
	env := newTestEnv(t)
	a := env.addUser(t, "agent-a", domain.RoleAgent)
	b := env.addUser(t, "agent-b", domain.RoleAgent)
	env.addOpenTickets(t, b.ID, 1)

	// Closed work must not count toward load.
	env.addOpenTickets(t, a.ID, 2)
	tickets, err := env.tickets.ListByStatus(context.Background(), domain.TicketStatusOpen)
	require.NoError(t, err)
	for i := range tickets {
		if tickets[i].AgentID == a.ID {
			tickets[i].Status = domain.TicketStatusClosed
			require.NoError(t, env.tickets.Update(context.Background(), &tickets[i]))
		}
	}

	agent, load, err := env.assignment.SelectAgent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.ID, agent.ID)
	assert.Equal(t, int64(0), load)
}

func TestSelectAgentSkipsReporters(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "reporter", domain.RoleReporter)
	agentUser := env.addUser(t, "agent", domain.RoleAgent)

	agent, _, err := env.assignment.SelectAgent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, agentUser.ID, agent.ID)
}

func TestSelectAgentFailsWithEmptyDirectory(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "reporter-only", domain.RoleReporter)

	_, _, err := env.assignment.SelectAgent(context.Background())
	requireCode(t, err, apperrors.CodeNoAgentAvailable)
}
