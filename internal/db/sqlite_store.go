package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/parakh-labs/parakh/internal/api"
	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
)

// traitColumns fixes the trait-to-column mapping of the wide submissions
// table. Order matters: it must match the column order in the insert and
// select statements.
var traitColumns = []catalog.Trait{
	catalog.TraitGratitude,
	catalog.TraitResilience,
	catalog.TraitEmpathy,
	catalog.TraitSociability,
	catalog.TraitSocialCognition,
	catalog.TraitCourage,
}

const submissionColumns = `id, name, name_hi, age, gender, dial_code, mobile, email, state, district, locale,
	gratitude_score, resilience_score, empathy_score, sociability_score, social_cognition_score, courage_score,
	total_score, final_title, final_assessment, answers, submitted_at`

// SQLiteStore persists submissions and admin accounts in a local SQLite
// file. It is the small-deployment default; Postgres serves hosted setups.
type SQLiteStore struct {
	db *sql.DB
}

var _ api.Store = (*SQLiteStore)(nil)

// OpenSQLite opens (and creates if needed) the database file at path,
// creating parent directories first.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return db, nil
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func contextBg() context.Context { return context.Background() }

func newSubmissionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func encodeAnswers(answers []models.AnswerRecord) (string, error) {
	b, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}
	return string(b), nil
}

// encodeFeedback denormalizes the per-answer feedback texts into their own
// column for people querying the table directly. Reads reconstruct the list
// from answers, so the column is write-only for the server.
func encodeFeedback(answers []models.AnswerRecord) (string, error) {
	texts := make([]string, 0, len(answers))
	for _, a := range answers {
		texts = append(texts, a.Feedback)
	}
	b, err := json.Marshal(texts)
	if err != nil {
		return "", fmt.Errorf("encode feedback: %w", err)
	}
	return string(b), nil
}

// decodeAnswers tolerates a corrupt column: one bad row should not take
// down listing and export.
func decodeAnswers(raw string) []models.AnswerRecord {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []models.AnswerRecord
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Error("sqlite store: decode answers", "err", err)
		return nil
	}
	return out
}

func (s *SQLiteStore) AddSubmission(ctx context.Context, rec *models.SubmissionRecord) (string, error) {
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	return id, nil
}

func scanSubmission(row interface{ Scan(...any) error }) (*models.SubmissionRecord, error) {
	var (
		rec      models.SubmissionRecord
		nameHI   sql.NullString
		gender   sql.NullString
		dialCode sql.NullString
		email    sql.NullString
		answers  string
		scores   [6]int
	)
	dest := []any{
		&rec.ID,
		&rec.Info.Name,
		&nameHI,
		&rec.Info.Age,
		&gender,
		&dialCode,
		&rec.Info.Mobile,
		&email,
		&rec.Info.State,
		&rec.Info.District,
		&rec.Locale,
	}
	for i := range scores {
		dest = append(dest, &scores[i])
	}
	dest = append(dest, &rec.TotalScore, &rec.FinalTitle, &rec.FinalAssessment, &answers, &rec.SubmittedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	rec.Info.NameHI = nameHI.String
	rec.Info.Gender = gender.String
	rec.Info.DialCode = dialCode.String
	rec.Info.Email = email.String
	rec.Answers = decodeAnswers(answers)
	rec.TraitScores = make(map[catalog.Trait]int, len(traitColumns))
	for i, tr := range traitColumns {
		rec.TraitScores[tr] = scores[i]
	}
	return &rec, nil
}

func (s *SQLiteStore) GetSubmission(ctx context.Context, id string) (*models.SubmissionRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = ?`, id)
	rec, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) ListSubmissions(ctx context.Context, limit, offset int) ([]*models.SubmissionRecord, error) {
	if limit <= 0 {
		// sqlite treats a negative limit as "no limit"
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+submissionColumns+` FROM submissions
		ORDER BY submitted_at, id LIMIT ? OFFSET ?`, limit, offset)
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

func (s *SQLiteStore) CountSubmissions(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) FindAdminByEmail(email string) (*models.AdminUser, error) {
	row := s.db.QueryRowContext(contextBg(), `SELECT id, email, pass_hash, created_at FROM admins
		WHERE email = ?`, strings.ToLower(email))
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

func (s *SQLiteStore) AddAdmin(a *models.AdminUser) error {
	if a == nil {
		return errors.New("nil admin")
	}
	_, err := s.db.ExecContext(contextBg(), `INSERT INTO admins (id, email, pass_hash, created_at)
		VALUES (?, ?, ?, ?)`, a.ID, strings.ToLower(a.Email), a.PassHash, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CountAdmins() (int, error) {
	var n int
	if err := s.db.QueryRowContext(contextBg(), `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
