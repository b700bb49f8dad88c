// Package middleware holds the HTTP middleware chain: authentication,
// correlation IDs, CORS, request logging, metrics, tracing and body limits.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/eventdesk/server/internal/api/problem"
	"github.com/eventdesk/server/internal/auth"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// JWTAuth rejects requests without a valid bearer token and stores the
// verified claims in the request context for handlers to read.
func JWTAuth(jwt *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				unauthorized(w, r, "Missing or malformed Authorization header")
				return
			}

			claims, err := jwt.Validate(token)
			if err != nil {
				zerolog.Ctx(r.Context()).Debug().Err(err).Msg("token rejected")
				unauthorized(w, r, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the verified token claims stored by JWTAuth, or nil when
// the request did not pass through it.
func Claims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsKey).(*auth.Claims)
	return claims
}

// UserID returns the authenticated user's ID from the token subject.
func UserID(r *http.Request) (int64, bool) {
	claims := Claims(r)
	if claims == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	problem.WriteProblem(w, problem.ProblemDetails{
		Type:     problem.TypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: r.URL.Path,
	})
}
