package api

import (
	"context"

	"github.com/parakh-labs/parakh/internal/models"
	"github.com/parakh-labs/parakh/internal/services"
)

// Store is everything the server needs from a submission sink: finished
// assessments, the admin accounts guarding the operator surface, and a ping
// for the keep-alive endpoint. Implemented by the in-memory store here and
// the SQLite/Postgres stores in internal/db.
type Store interface {
	// AddSubmission persists a finished assessment and returns the
	// sink-assigned submission id.
	AddSubmission(ctx context.Context, rec *models.SubmissionRecord) (string, error)
	// GetSubmission returns nil without error when the id is unknown.
	GetSubmission(ctx context.Context, id string) (*models.SubmissionRecord, error)
	// ListSubmissions returns records in submission order; limit 0 means all.
	ListSubmissions(ctx context.Context, limit, offset int) ([]*models.SubmissionRecord, error)
	CountSubmissions(ctx context.Context) (int, error)

	FindAdminByEmail(email string) (*models.AdminUser, error)
	AddAdmin(a *models.AdminUser) error
	CountAdmins() (int, error)

	Ping(ctx context.Context) error
}

// Every service depends on a narrow slice of Store. Record types are shared
// through models, so a Store satisfies each slice directly; these pins keep
// the slices from drifting apart.
var (
	_ services.SubmissionSink = (Store)(nil)
	_ services.ExportStore    = (Store)(nil)
	_ services.AnalyticsStore = (Store)(nil)
	_ services.AuthStore      = (Store)(nil)
)
