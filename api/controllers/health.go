package controllers

import (
	"net/http"

	"github.com/hashimadil/storefront-backend/api/responses"
	"github.com/hashimadil/storefront-backend/pkg/config"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// ReadinessChecks holds the dependency probes run by the ready endpoint.
type ReadinessChecks struct {
	DB    func(r *http.Request) error
	Redis func(r *http.Request) error
}

func HealthReady(cfg *config.Config, checks ReadinessChecks, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		if checks.DB != nil {
			if err := checks.DB(r); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if checks.Redis != nil {
			if err := checks.Redis(r); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
