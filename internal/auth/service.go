package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hashimadil/storefront-backend/internal/users"
	pkgAuth "github.com/hashimadil/storefront-backend/pkg/auth"
	"github.com/hashimadil/storefront-backend/pkg/auth/session"
	"github.com/hashimadil/storefront-backend/pkg/config"
	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/googleauth"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	AuthCodeURL(state string) string
	HandleGoogleCallback(ctx context.Context, code string) (*SignInResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*MeResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	users      userRepository
	google     googleauth.Exchanger
	session    sessionManager
	jwtCfg     config.JWTConfig
	adminEmail string
}

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role enums.UserRole) (*models.User, error)
}

type sessionManager interface {
	Generate(ctx context.Context, sessionID string, userID uuid.UUID) error
	Revoke(ctx context.Context, sessionID string) error
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	Google         googleauth.Exchanger
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	AdminEmail     string
}

// NewService constructs a Google sign-in service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Google == nil {
		return nil, fmt.Errorf("google client is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		users:      params.UserRepo,
		google:     params.Google,
		session:    params.SessionManager,
		jwtCfg:     params.JWTConfig,
		adminEmail: strings.ToLower(strings.TrimSpace(params.AdminEmail)),
	}, nil
}

func (s *service) AuthCodeURL(state string) string {
	return s.google.AuthCodeURL(state)
}

// HandleGoogleCallback exchanges the authorization code, provisions the user
// on first sign-in, and mints the session credentials.
func (s *service) HandleGoogleCallback(ctx context.Context, code string) (*SignInResult, error) {
	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "google exchange")
	}

	user, err := s.resolveUser(ctx, profile.Email, profile.Name)
	if err != nil {
		return nil, err
	}

	sessionID := session.NewSessionID()
	payload := pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		JTI:    sessionID,
	}
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	if err := s.session.Generate(ctx, sessionID, user.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store session")
	}

	return &SignInResult{
		AccessToken: accessToken,
		User:        users.FromModel(user),
	}, nil
}

// resolveUser finds or creates the row for the email. The configured admin
// email is promoted on every sign-in, covering rows created before the
// account was designated admin.
func (s *service) resolveUser(ctx context.Context, email, name string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "google profile has no email")
	}

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
		}
		role := enums.UserRoleUser
		if normalized == s.adminEmail {
			role = enums.UserRoleAdmin
		}
		created, err := s.users.Create(ctx, users.CreateUserDTO{
			Email: normalized,
			Name:  displayName(name, normalized),
			Role:  role,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return created, nil
	}

	if normalized == s.adminEmail && user.Role != enums.UserRoleAdmin {
		promoted, err := s.users.UpdateRole(ctx, user.ID, enums.UserRoleAdmin)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "promote admin")
		}
		return promoted, nil
	}
	return user, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*MeResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	return &MeResponse{User: users.FromModel(user)}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	if err := s.session.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	return nil
}

func displayName(name, email string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		return trimmed
	}
	return strings.Split(email, "@")[0]
}
