package services

import (
	"context"
	"log/slog"
	"time"

	"sakeenah/internal/domain"
)

// AdminSubject is the token subject of the single admin account.
const AdminSubject = "admin"

// DefaultAdminTokenExpiry bounds how long an admin token stays valid.
const DefaultAdminTokenExpiry = 12 * time.Hour

type adminService struct {
	hasher domain.PasswordHasher
	issuer domain.TokenIssuer
	salt   string
	hash   string
	roles  []string
	expiry time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewAdminService checks passwords against the configured salt and bcrypt
// hash and issues tokens carrying roles.
func NewAdminService(hasher domain.PasswordHasher, issuer domain.TokenIssuer, salt, hash string, roles []string, expiry time.Duration, logger *slog.Logger) domain.AdminService {
	if expiry <= 0 {
		expiry = DefaultAdminTokenExpiry
	}
	return &adminService{
		hasher: hasher,
		issuer: issuer,
		salt:   salt,
		hash:   hash,
		roles:  roles,
		expiry: expiry,
		now:    time.Now,
		logger: logger,
	}
}

func (s *adminService) Login(ctx context.Context, password string) (*domain.AdminToken, error) {
	if password == "" {
		return nil, domain.ErrInvalidInput
	}
	if s.hash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := s.hasher.Compare(s.hash, s.salt, password); err != nil {
		s.logger.WarnContext(ctx, "admin login rejected")
		return nil, domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue(AdminSubject, s.roles, s.expiry)
	if err != nil {
		return nil, err
	}
	return &domain.AdminToken{Token: token, ExpiresAt: s.now().Add(s.expiry)}, nil
}
