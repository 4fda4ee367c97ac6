package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk/sla-ticket-service/internal/domain"
)

// ErrNotFound is returned by lookups that match no record, regardless of the
// backing store.
var ErrNotFound = errors.New("record not found")

// TicketRepository is the Ticket Store contract consumed by the engines.
// Implementations must make single-record reads, inserts and updates atomic;
// cross-call atomicity (read counts, then insert) is the caller's problem.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error)
	CountByAgentAndStatus(ctx context.Context, agentID int64, status domain.TicketStatus) (int64, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository returns a Postgres-backed implementation.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, type, title, status, priority, reporter_id, agent_id,
       created_at, updated_at, due_by, closed_at, sla_met`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (type, title, status, priority, reporter_id, agent_id, created_at, updated_at, due_by, closed_at, sla_met)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$7,$8,$9,$10)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		ticket.Type,
		ticket.Title,
		ticket.Status,
		ticket.Priority,
		ticket.ReporterID,
		ticket.AgentID,
		ticket.CreatedAt,
		ticket.DueBy,
		ticket.ClosedAt,
		ticket.SLAMet,
	).Scan(&ticket.ID)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET status=$1, closed_at=$2, sla_met=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Status,
		ticket.ClosedAt,
		ticket.SLAMet,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Type,
		&ticket.Title,
		&ticket.Status,
		&ticket.Priority,
		&ticket.ReporterID,
		&ticket.AgentID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.DueBy,
		&ticket.ClosedAt,
		&ticket.SLAMet,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListByStatus(ctx context.Context, status domain.TicketStatus) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE status=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) CountByAgentAndStatus(ctx context.Context, agentID int64, status domain.TicketStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM tickets WHERE agent_id=$1 AND status=$2`
	var count int64
	if err := r.pool.QueryRow(ctx, query, agentID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Type,
			&ticket.Title,
			&ticket.Status,
			&ticket.Priority,
			&ticket.ReporterID,
			&ticket.AgentID,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
			&ticket.DueBy,
			&ticket.ClosedAt,
			&ticket.SLAMet,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
