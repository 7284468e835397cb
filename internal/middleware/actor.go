package middleware

import (
	"net/http"
	"strings"

	"crm-backend/internal/auth"
)

// Actor resolves the request identity used for audit stamping. A valid Bearer
// token wins; everything else runs as the fallback actor. Requests are never
// rejected here.
func Actor(manager *auth.Manager, fallback auth.Actor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := fallback

			if manager != nil {
				header := r.Header.Get("Authorization")
				if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
					if claims, err := manager.Parse(token); err == nil {
						actor = auth.Actor{
							Name:  claims.Name,
							Email: claims.Subject,
							Role:  claims.Role,
						}
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}
