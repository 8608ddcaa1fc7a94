package middleware

import (
	"context"
	"io"
	"net/http"
	"strings"

	"trucking-planner/internal/domain"
	"trucking-planner/internal/logx"
)

// Actor identity headers. The gateway in front of the planner
// authenticates callers and forwards their identity here.
const (
	HeaderActorRole   = "X-Actor-Role"
	HeaderActorVendor = "X-Actor-Vendor"
)

type actorCtxKey struct{}

// ActorFromContext returns the actor stored by the Actor middleware.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return a, ok
}

// WithActor stores an actor in the context, used by tests.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, a)
}

// Actor resolves the caller identity from the forwarded headers and puts
// it in the request context. Requests without a valid identity get 401.
func Actor(logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := domain.Role(strings.TrimSpace(r.Header.Get(HeaderActorRole)))
			vendor := strings.TrimSpace(r.Header.Get(HeaderActorVendor))

			if !role.Valid() {
				unauthorized(logger, w, r, "missing or unknown actor role")
				return
			}
			if role == domain.RoleVendor && vendor == "" {
				unauthorized(logger, w, r, "vendor actor without vendor name")
				return
			}
			if role == domain.RoleAdmin {
				vendor = ""
			}

			a := domain.Actor{Role: role, Vendor: vendor}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), a)))
		})
	}
}

func unauthorized(logger logx.Logger, w http.ResponseWriter, r *http.Request, reason string) {
	logger.Warn("unauthorized request",
		logx.String("reason", reason),
		logx.String("method", r.Method),
		logx.String("path", r.URL.Path),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":"unauthorized"}`)
}
