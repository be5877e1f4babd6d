package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/google/uuid"
)

// SubmissionRepository archives relayed contact submissions in PostgreSQL.
type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// EnsureSchema creates the archive table when it does not exist yet.
func (r *SubmissionRepository) EnsureSchema(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS contact_submissions (
			id         UUID PRIMARY KEY,
			kind       TEXT NOT NULL,
			name       TEXT NOT NULL,
			email      TEXT,
			phone      TEXT,
			company    TEXT,
			service    TEXT,
			project    TEXT,
			message    TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to create contact_submissions: %w", err)
	}
	return nil
}

// Save inserts one record, assigning its ID when empty.
func (r *SubmissionRepository) Save(ctx context.Context, rec *domain.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	const q = `
		INSERT INTO contact_submissions (
			id, kind, name, email, phone, company, service, project, message, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, q,
		rec.ID,
		rec.Kind,
		rec.Name,
		nullString(rec.Email),
		nullString(rec.Phone),
		nullString(rec.Company),
		nullString(rec.Service),
		nullString(rec.Project),
		nullString(rec.Message),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive submission: %w", err)
	}
	return nil
}

// ListRecent returns the newest records first.
func (r *SubmissionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Record, error) {
	const q = `
		SELECT id, kind, name, email, phone, company, service, project, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Record, 0, limit)
	for rows.Next() {
		var rec domain.Record
		var email, phone, company, service, project, message sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Name, &email, &phone, &company, &service, &project, &message, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		rec.Email = email.String
		rec.Phone = phone.String
		rec.Company = company.String
		rec.Service = service.String
		rec.Project = project.String
		rec.Message = message.String
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
