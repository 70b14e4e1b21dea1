package controllers

import (
	"net/http"

	"github.com/hashimadil/storefront-backend/api/responses"
	"github.com/hashimadil/storefront-backend/api/validators"
	"github.com/hashimadil/storefront-backend/internal/drops"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

// CreateDropSignup registers a phone number for drop announcements.
func CreateDropSignup(svc drops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drops service unavailable"))
			return
		}

		var payload drops.SignupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		signup, err := svc.Signup(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, signup)
	}
}

// AdminListDropSignups returns every signed-up phone number, newest first.
func AdminListDropSignups(svc drops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "drops service unavailable"))
			return
		}

		signups, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, signups)
	}
}
