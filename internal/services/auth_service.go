package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/parakh-labs/parakh/internal/models"
)

type AuthStore interface {
	FindAdminByEmail(email string) (*models.AdminUser, error)
	AddAdmin(a *models.AdminUser) error
	CountAdmins() (int, error)
}

type TokenSigner func(uid, email string, ttl time.Duration) (string, error)

// AuthService manages the operator accounts behind the admin endpoints.
// Registration is open only while no admin exists; after the first account
// the endpoint is closed.
type AuthService struct {
	store     AuthStore
	now       func() time.Time
	idGen     func(prefix string, n int) string
	signToken TokenSigner
	tokenTTL  time.Duration
}

type AuthResult struct {
	Token   string
	AdminID string
	Email   string
}

func NewAuthService(store AuthStore, signer TokenSigner) *AuthService {
	return &AuthService{
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     func(prefix string, n int) string { return prefix + shortID(n) },
		signToken: signer,
		tokenTTL:  30 * 24 * time.Hour,
	}
}

func (s *AuthService) Register(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	if len(password) < 8 {
		return nil, NewInvalidError("password must be at least 8 characters")
	}
	count, err := s.store.CountAdmins()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewForbiddenError("registration is closed")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.AdminUser{
		ID:        s.idGen("a", 7),
		Email:     email,
		PassHash:  hash,
		CreatedAt: s.now(),
	}
	if err := s.store.AddAdmin(admin); err != nil {
		return nil, err
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(admin.ID, admin.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, AdminID: admin.ID, Email: admin.Email}, nil
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	a, err := s.store.FindAdminByEmail(email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(a.PassHash, []byte(password)); err != nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(a.ID, a.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, AdminID: a.ID, Email: a.Email}, nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
