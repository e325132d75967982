package api

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/parakh-labs/parakh/internal/catalog"
	"github.com/parakh-labs/parakh/internal/models"
	"github.com/parakh-labs/parakh/internal/services"
)

// MemoryStore keeps submissions and admin accounts in process memory. It is
// the dev and test default; deployments point at one of the SQL stores in
// internal/db instead.
type MemoryStore struct {
	mu     sync.RWMutex
	subs   map[string]*models.SubmissionRecord
	order  []string
	admins map[string]*models.AdminUser
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subs:   map[string]*models.SubmissionRecord{},
		admins: map[string]*models.AdminUser{},
	}
}

var _ Store = (*MemoryStore)(nil)

// AddSubmission stores a copy of the record under a fresh id, so later
// mutation of the caller's value cannot reach the stored one.
func (s *MemoryStore) AddSubmission(ctx context.Context, rec *models.SubmissionRecord) (string, error) {
	if rec == nil {
		return "", services.NewInvalidError("submission required")
	}
	cp := copyRecord(rec)
	cp.ID = strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[cp.ID] = cp
	s.order = append(s.order, cp.ID)
	return cp.ID, nil
}

func (s *MemoryStore) GetSubmission(ctx context.Context, id string) (*models.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subs[id], nil
}

func (s *MemoryStore) ListSubmissions(ctx context.Context, limit, offset int) ([]*models.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.order) {
		return nil, nil
	}
	ids := s.order[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	out := make([]*models.SubmissionRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.subs[id])
	}
	return out, nil
}

func (s *MemoryStore) CountSubmissions(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

func (s *MemoryStore) FindAdminByEmail(email string) (*models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admins[strings.ToLower(email)], nil
}

func (s *MemoryStore) AddAdmin(a *models.AdminUser) error {
	if a == nil {
		return services.NewInvalidError("admin required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[strings.ToLower(a.Email)] = a
	return nil
}

func (s *MemoryStore) CountAdmins() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func copyRecord(rec *models.SubmissionRecord) *models.SubmissionRecord {
	cp := *rec
	cp.Answers = append([]models.AnswerRecord(nil), rec.Answers...)
	if rec.TraitScores != nil {
		cp.TraitScores = make(map[catalog.Trait]int, len(rec.TraitScores))
		for k, v := range rec.TraitScores {
			cp.TraitScores[k] = v
		}
	}
	return &cp
}
