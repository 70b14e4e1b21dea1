package drops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/pkg/db"
	"github.com/hashimadil/storefront-backend/pkg/db/models"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
)

// SignupDTO is the transport shape for a drop signup.
type SignupDTO struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignupRequest registers a phone number for drop announcements.
type SignupRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
}

type signupRepository interface {
	Create(ctx context.Context, signup *models.DropSignup) (*models.DropSignup, error)
	List(ctx context.Context) ([]models.DropSignup, error)
}

// Service handles drop-announcement signups.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupDTO, error)
	List(ctx context.Context) ([]SignupDTO, error)
}

type service struct {
	repo signupRepository
}

// NewService builds the drops service.
func NewService(repo signupRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("signup repository is required")
	}
	return &service{repo: repo}, nil
}

// Signup registers the phone number once; re-registering the same number
// returns a conflict rather than a duplicate row.
func (s *service) Signup(ctx context.Context, req SignupRequest) (*SignupDTO, error) {
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone number is required")
	}

	created, err := s.repo.Create(ctx, &models.DropSignup{
		ID:          uuid.New(),
		PhoneNumber: phone,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "phone number already signed up")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create signup")
	}

	return fromModel(created), nil
}

func (s *service) List(ctx context.Context) ([]SignupDTO, error) {
	signups, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list signups")
	}

	out := make([]SignupDTO, 0, len(signups))
	for i := range signups {
		out = append(out, *fromModel(&signups[i]))
	}
	return out, nil
}

func fromModel(m *models.DropSignup) *SignupDTO {
	if m == nil {
		return nil
	}
	return &SignupDTO{
		ID:          m.ID,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
	}
}
