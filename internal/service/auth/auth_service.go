// Package auth issues the anonymous browser sessions the shortlist is keyed by,
// and admin tokens for the operational endpoints.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ougirez/luxcompare/internal/domain"
	"github.com/ougirez/luxcompare/internal/pkg/constants"
	"github.com/ougirez/luxcompare/internal/pkg/logger"
	"github.com/ougirez/luxcompare/internal/pkg/utils"
)

type Service struct {
	jwtKey      string
	adminSecret string
	ttl         time.Duration
	now         func() time.Time
}

func NewService(jwtKey, adminSecret string, ttl time.Duration) *Service {
	return &Service{
		jwtKey:      jwtKey,
		adminSecret: adminSecret,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (svc *Service) TTL() time.Duration {
	return svc.ttl
}

// IssueSession creates a new anonymous user and a token identifying it.
func (svc *Service) IssueSession(ctx context.Context) (*domain.Session, error) {
	session, err := svc.issue(&utils.AuthTokenWrapper{UserID: uuid.NewString()})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "issued session for user %s", session.UserID)
	return session, nil
}

// Authenticate returns the user id a session token was issued for.
func (svc *Service) Authenticate(token string) (string, error) {
	wrapper, err := utils.ParseAuthToken(token, svc.jwtKey)
	if err != nil {
		return "", err
	}
	if _, err = uuid.Parse(wrapper.UserID); err != nil {
		return "", fmt.Errorf("%w: malformed user id", constants.ErrUnauthorized)
	}
	return wrapper.UserID, nil
}

// LoginAdmin trades the configured admin secret for an admin token. With no
// secret configured nobody is an admin.
func (svc *Service) LoginAdmin(ctx context.Context, req *domain.AdminLoginRequest) (*domain.Session, error) {
	if err := utils.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: secret is required", constants.ErrBadRequest)
	}
	if !svc.secretMatches(req.Secret) {
		logger.Warnf(ctx, "rejected admin login")
		return nil, constants.ErrUnauthorized
	}

	return svc.issue(&utils.AuthTokenWrapper{UserID: uuid.NewString(), Secret: digest(req.Secret)})
}

func (svc *Service) AuthenticateAdmin(token string) error {
	wrapper, err := utils.ParseAuthToken(token, svc.jwtKey)
	if err != nil {
		return err
	}
	// the token carries a digest so rotating the secret revokes old tokens
	if svc.adminSecret == "" || subtle.ConstantTimeCompare([]byte(wrapper.Secret), []byte(digest(svc.adminSecret))) != 1 {
		return constants.ErrUnauthorized
	}
	return nil
}

func (svc *Service) secretMatches(secret string) bool {
	if svc.adminSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(svc.adminSecret)) == 1
}

func (svc *Service) issue(wrapper *utils.AuthTokenWrapper) (*domain.Session, error) {
	token, err := utils.GenerateAuthToken(wrapper, svc.jwtKey, svc.ttl)
	if err != nil {
		return nil, fmt.Errorf("utils.GenerateAuthToken: %w", err)
	}

	session := &domain.Session{UserID: wrapper.UserID, Token: token}
	if wrapper.ExpiresAt > 0 {
		session.ExpiresAt = time.Unix(wrapper.ExpiresAt, 0).UTC()
	}
	return session, nil
}

func digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
