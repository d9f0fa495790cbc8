// Package storage persists generated reports so the HTTP service can offer a
// review history. Persistence is optional; sessions run identically without
// a store.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	// import db drivers
	_ "github.com/lib/pq"
)

// ErrReportNotFound is returned when a report id has no stored record.
var ErrReportNotFound = errors.New("report not found")

// ReportRecord is one rendered review report as stored in the database. The
// markdown is stored as-is; items are not decomposed because the report is a
// terminal artifact.
type ReportRecord struct {
	ID           string    `db:"id"`
	CreatedAt    time.Time `db:"created_at"`
	Language     string    `db:"language"`
	CommentCount int       `db:"comment_count"`
	Markdown     string    `db:"markdown"`
}

// Store defines the interface for all database operations.
type Store interface {
	SaveReport(ctx context.Context, rec *ReportRecord) error
	GetReport(ctx context.Context, id string) (*ReportRecord, error)
	ListReports(ctx context.Context, limit int) ([]ReportRecord, error)
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a new Store backed by PostgreSQL.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

// SaveReport inserts a new report record.
func (s *postgresStore) SaveReport(ctx context.Context, rec *ReportRecord) error {
	query := `INSERT INTO reports (id, created_at, language, comment_count, markdown) VALUES ($1, $2, $3, $4, $5)`
	_, err := s.db.ExecContext(ctx, query, rec.ID, rec.CreatedAt, rec.Language, rec.CommentCount, rec.Markdown)
	return err
}

// GetReport retrieves a single report by id.
func (s *postgresStore) GetReport(ctx context.Context, id string) (*ReportRecord, error) {
	query := `SELECT id, created_at, language, comment_count, markdown FROM reports WHERE id = $1`

	var rec ReportRecord
	if err := s.db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}
		return nil, err
	}
	return &rec, nil
}

// ListReports returns the most recent reports, newest first.
func (s *postgresStore) ListReports(ctx context.Context, limit int) ([]ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, created_at, language, comment_count, markdown FROM reports ORDER BY created_at DESC LIMIT $1`

	var recs []ReportRecord
	if err := s.db.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, err
	}
	return recs, nil
}
