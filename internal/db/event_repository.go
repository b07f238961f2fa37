package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/meetwonka/authinfo/internal/domain"
)

const DefaultEventsTable = "analytics_events"

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type EventRepository struct {
	db    DBTX
	table string
}

func NewEventRepository(db DBTX, table string) *EventRepository {
	if table == "" {
		table = DefaultEventsTable
	}
	return &EventRepository{
		db:    db,
		table: pgx.Identifier{table}.Sanitize(),
	}
}

func (r *EventRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id uuid PRIMARY KEY,
	action text NOT NULL,
	username text NOT NULL,
	tenant_id text NOT NULL,
	email text NOT NULL,
	score integer,
	created_at timestamptz NOT NULL
)`, r.table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", r.table, err)
	}
	return nil
}

func (r *EventRepository) Insert(ctx context.Context, event domain.Event) (domain.Event, error) {
	id, err := parseEventID(event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: invalid event id", domain.ErrInvalidInput)
	}

	_, err = r.db.Exec(ctx,
		fmt.Sprintf("INSERT INTO %s (id, action, username, tenant_id, email, score, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)", r.table),
		id, event.Action, event.UserName, event.TenantID, event.Email, event.Score, event.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}

	return event, nil
}

func (r *EventRepository) UpdateScore(ctx context.Context, id domain.EventID, score int) (bool, error) {
	parsedID, err := parseEventID(id)
	if err != nil {
		return false, fmt.Errorf("%w: invalid event id", domain.ErrInvalidInput)
	}

	tag, err := r.db.Exec(ctx, fmt.Sprintf("UPDATE %s SET score = $1 WHERE id = $2", r.table), score, parsedID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func parseEventID(id domain.EventID) (pgtype.UUID, error) {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return pgtype.UUID{}, err
	}

	var parsed pgtype.UUID
	copy(parsed.Bytes[:], u[:])
	parsed.Valid = true

	return parsed, nil
}
