package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const createEnquiriesTable = `
CREATE TABLE IF NOT EXISTS enquiries (
	id         uuid PRIMARY KEY,
	name       varchar(100)  NOT NULL,
	lastname   varchar(100)  NOT NULL,
	email      varchar(254)  NOT NULL,
	subject    varchar(200)  NOT NULL,
	notes      varchar(5000) NOT NULL,
	created_at timestamptz   NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS enquiries_created_at_idx ON enquiries (created_at DESC);
CREATE INDEX IF NOT EXISTS enquiries_email_idx ON enquiries (email);`

const insertEnquiry = `
INSERT INTO enquiries (id, name, lastname, email, subject, notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`

// PostgresStore keeps enquiries in a Postgres table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, e *Enquiry) error {
	if err := validateSchema(e); err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate enquiry id: %w", err)
	}

	err = s.db.QueryRowContext(ctx, insertEnquiry,
		id, e.Name, e.Lastname, e.Email, e.Subject, e.Notes,
	).Scan(&e.CreatedAt)
	if err != nil {
		return classifyPostgresError(err)
	}

	e.ID = id.String()
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Migrate creates the enquiries table and its indexes.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createEnquiriesTable); err != nil {
		return fmt.Errorf("create enquiries table: %w", err)
	}
	return nil
}

func classifyPostgresError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("insert enquiry: %w", err)
	}

	switch pqErr.Code.Name() {
	case "unique_violation":
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
	case "not_null_violation", "check_violation", "string_data_right_truncation":
		return &ValidationError{Fields: []FieldError{{Field: pqErr.Column, Message: pqErr.Message}}}
	}

	return fmt.Errorf("insert enquiry: %w", err)
}
