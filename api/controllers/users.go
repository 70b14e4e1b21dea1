package controllers

import (
	"net/http"

	"github.com/hashimadil/storefront-backend/api/responses"
	"github.com/hashimadil/storefront-backend/internal/users"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

// AdminListUsers returns every registered user, newest first.
func AdminListUsers(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users repository unavailable"))
			return
		}

		models, err := repo.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users"))
			return
		}
		responses.WriteSuccess(w, users.FromModels(models))
	}
}
