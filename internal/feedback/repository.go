package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists feedback entries.
type Repository interface {
	Create(ctx context.Context, entry Entry) error
	ListByEmail(ctx context.Context, email string) ([]Entry, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed feedback repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a feedback entry.
func (r *PostgresRepository) Create(ctx context.Context, entry Entry) error {
	entryID, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO feedback (id, email, message, source, created_at)
        VALUES ($1, $2, $3, $4, $5)`, entryID, entry.Email, entry.Message, entry.Source, entry.CreatedAt.UTC())
	return err
}

// ListByEmail fetches the entries submitted by an email, newest first.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, message, source, created_at
        FROM feedback WHERE email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			entry     Entry
		)
		if err := rows.Scan(&id, &entry.Email, &entry.Message, &entry.Source, &createdAt); err != nil {
			return nil, err
		}
		entry.ID = id.String()
		entry.CreatedAt = createdAt.UTC()
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
