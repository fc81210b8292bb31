package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lumacart/lumacart/pkg/jwtx"
	"github.com/lumacart/lumacart/pkg/slogx"
)

// AuthnMiddleware verifies the Bearer access token and injects the user id,
// role and session id into the request context. Refresh tokens are rejected
// here even though they verify, the "typ" claim must be "access".
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, r, http.StatusUnauthorized, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					WriteError(w, r, http.StatusUnauthorized, "token expired")
					return
				}
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, r, http.StatusUnauthorized, "invalid token")
				return
			}

			if err := claims.ValidateType(jwtx.TokenTypeAccess); err != nil {
				WriteError(w, r, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeySessionID, c.SID)
	return ctx
}
