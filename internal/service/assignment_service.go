package service

import (
	"context"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
	"github.com/helpdesk/sla-ticket-service/internal/repository"
	apperrors "github.com/helpdesk/sla-ticket-service/pkg/util"
)

// AssignmentService selects the least-busy agent for new tickets.
type AssignmentService struct {
	tickets repository.TicketRepository
	users   repository.UserRepository
}

// AssignmentDependencies bundles repositories.
type AssignmentDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	return &AssignmentService{
		tickets: deps.TicketRepo,
		users:   deps.UserRepo,
	}
}

// SelectAgent returns the agent with the fewest OPEN tickets, along with that
// open-ticket count. Ties go to the first agent in directory order, which
// ListByRole fixes as ascending identifier. Pure read; nothing is mutated.
func (s *AssignmentService) SelectAgent(ctx context.Context) (*domain.User, int64, error) {
	agents, err := s.users.ListByRole(ctx, domain.RoleAgent)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	if len(agents) == 0 {
		return nil, 0, apperrors.NewNoAgentAvailable()
	}

	var best *domain.User
	var bestLoad int64
	for i := range agents {
		load, err := s.tickets.CountByAgentAndStatus(ctx, agents[i].ID, domain.TicketStatusOpen)
		if err != nil {
			return nil, 0, apperrors.MapError(err)
		}
		if best == nil || load < bestLoad {
			best = &agents[i]
			bestLoad = load
		}
	}
	return best, bestLoad, nil
}
