package controllers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/hashimadil/storefront-backend/api/middleware"
	"github.com/hashimadil/storefront-backend/api/responses"
	authsvc "github.com/hashimadil/storefront-backend/internal/auth"
	"github.com/hashimadil/storefront-backend/pkg/config"
	pkgerrors "github.com/hashimadil/storefront-backend/pkg/errors"
	"github.com/hashimadil/storefront-backend/pkg/logger"
)

const oauthStateCookie = "storefront_oauth_state"

// GoogleLogin sends the shopper to the Google consent page with a fresh
// CSRF state bound to a short-lived cookie.
func GoogleLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		state := uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     oauthStateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   int((10 * time.Minute).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, svc.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// GoogleCallback completes the OAuth flow, sets the session cookie, and
// redirects back into the storefront.
func GoogleCallback(svc authsvc.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		failure := func(reason string) {
			target := cfg.Storefront.FailureRedirect
			if reason != "" {
				target += "?error=" + url.QueryEscape(reason)
			}
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		}

		stateCookie, err := r.Cookie(oauthStateCookie)
		if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
			failure("state mismatch")
			return
		}
		clearCookie(w, oauthStateCookie, false)

		code := r.URL.Query().Get("code")
		if code == "" {
			failure("missing authorization code")
			return
		}

		result, err := svc.HandleGoogleCallback(r.Context(), code)
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "google callback failed", err)
			}
			failure("sign-in failed")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.JWT.CookieName,
			Value:    result.AccessToken,
			Path:     "/",
			MaxAge:   int(cfg.JWT.SessionTTL().Seconds()),
			HttpOnly: true,
			Secure:   cfg.JWT.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, cfg.Storefront.SuccessRedirect, http.StatusTemporaryRedirect)
	}
}

// LoginRedirect points legacy login links at the Google flow.
func LoginRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/auth/google", http.StatusTemporaryRedirect)
	}
}

// PasswordAuthDisabled answers legacy credential submissions. There is no
// password path; clients are told where to go instead.
func PasswordAuthDisabled() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"redirect": "/api/auth/google",
			"message":  "password sign-in is disabled, use Google",
		})
	}
}

// Me returns the authenticated user's profile.
func Me(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		me, err := svc.Me(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, me)
	}
}

// Logout revokes the server-side session and clears the cookie.
func Logout(svc authsvc.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		if err := svc.Logout(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clearCookie(w, cfg.JWT.CookieName, cfg.JWT.CookieSecure)
		responses.WriteSuccess(w, map[string]string{"status": "logged out"})
	}
}

func clearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
