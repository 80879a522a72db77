package middleware

import (
	"net/http"
	"strings"

	"github.com/dcarvalho/shopline-backend/api/responses"
	pkgAuth "github.com/dcarvalho/shopline-backend/pkg/auth"
	"github.com/dcarvalho/shopline-backend/pkg/config"
	pkgerrors "github.com/dcarvalho/shopline-backend/pkg/errors"
	"github.com/dcarvalho/shopline-backend/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// username claim. A missing credential is unauthorized; a credential that is
// present but invalid, expired, or malformed is forbidden.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no token provided"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no token provided"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, "invalid token"))
				return
			}
			if claims.Username == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "invalid token"))
				return
			}

			ctx := WithUsername(r.Context(), claims.Username)
			if logg != nil {
				ctx = logg.WithUsername(ctx, claims.Username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
