package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"tush00nka/studybud/internal/pkg/auth"
	"tush00nka/studybud/internal/service"
)

type contextKey int

const claimsKey contextKey = iota

// AuthMiddleware resolves the session token of a request, if any, and
// guards routes that need a logged in user.
type AuthMiddleware struct {
	sessions service.SessionService
}

func NewAuthMiddleware(sessions service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate puts the claims of a valid token into the request context.
// Requests without a valid token pass through anonymously.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.TokenFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.sessions.Resolve(r.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				log.Printf("auth: failed to resolve session: %v", err)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// RequireAuth redirects anonymous requests to the login page, remembering
// where they were headed.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUserID(r.Context()) == 0 {
			http.Redirect(w, r, loginURL(r.URL.RequestURI()), http.StatusFound)
			return
		}
		next(w, r)
	})
}

func loginURL(next string) string {
	return "/login?next=" + url.QueryEscape(next)
}

func CurrentClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// CurrentUserID is 0 for anonymous requests.
func CurrentUserID(ctx context.Context) uint {
	if claims := CurrentClaims(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}
