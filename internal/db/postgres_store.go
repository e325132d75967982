package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parakh-labs/parakh/internal/api"
	"github.com/parakh-labs/parakh/internal/models"
)

// PostgresStore persists submissions and admin accounts in PostgreSQL, the
// hosted (Supabase-style) deployment target. Schema and semantics mirror
// the SQLite store; only placeholders and column types differ.
type PostgresStore struct {
	db *sql.DB
}

var _ api.Store = (*PostgresStore)(nil)

// OpenPostgres opens a connection pool for url and applies the pool limits.
func OpenPostgres(url string, maxOpen, maxIdle int, connMaxLifetime time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(connMaxLifetime)
	return db, nil
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) AddSubmission(ctx context.Context, rec *models.SubmissionRecord) (string, error) {
	if rec == nil {
		return "", errors.New("nil submission")
	}
	id := newSubmissionID()
	answers, err := encodeAnswers(rec.Answers)
	if err != nil {
		return "", err
	}
	feedback, err := encodeFeedback(rec.Answers)
	if err != nil {
		return "", err
	}
	args := []any{
		id,
		rec.Info.Name,
		toNullString(rec.Info.NameHI),
		rec.Info.Age,
		toNullString(rec.Info.Gender),
		toNullString(rec.Info.DialCode),
		rec.Info.Mobile,
		toNullString(rec.Info.Email),
		rec.Info.State,
		rec.Info.District,
		rec.Locale,
	}
	for _, tr := range traitColumns {
		args = append(args, rec.TraitScores[tr])
	}
	args = append(args, rec.TotalScore, rec.FinalTitle, rec.FinalAssessment, answers, rec.SubmittedAt, feedback)
	_, err = s.db.ExecContext(ctx, `INSERT INTO submissions (`+submissionColumns+`, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`, args...)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) GetSubmission(ctx context.Context, id string) (*models.SubmissionRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
	rec, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListSubmissions(ctx context.Context, limit, offset int) ([]*models.SubmissionRecord, error) {
	// LIMIT NULL means "no limit" in postgres
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+submissionColumns+` FROM submissions
		ORDER BY submitted_at, id LIMIT $1 OFFSET $2`, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()
	var out []*models.SubmissionRecord
	for rows.Next() {
		rec, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountSubmissions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) FindAdminByEmail(email string) (*models.AdminUser, error) {
	row := s.db.QueryRowContext(contextBg(), `SELECT id, email, pass_hash, created_at FROM admins
		WHERE email = $1`, strings.ToLower(email))
	var a models.AdminUser
	err := row.Scan(&a.ID, &a.Email, &a.PassHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &a, nil
}

func (s *PostgresStore) AddAdmin(a *models.AdminUser) error {
	if a == nil {
		return errors.New("nil admin")
	}
	_, err := s.db.ExecContext(contextBg(), `INSERT INTO admins (id, email, pass_hash, created_at)
		VALUES ($1, $2, $3, $4)`, a.ID, strings.ToLower(a.Email), a.PassHash, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountAdmins() (int, error) {
	var n int
	if err := s.db.QueryRowContext(contextBg(), `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
