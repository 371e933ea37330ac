package middleware

import (
	"net/http"

	"psych-portal-api/pkg/response"
)

// RequireAdmin gates a route group to ADMIN professionals. It assumes
// Authenticate has already run.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		professional, ok := GetProfessionalFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		if !professional.IsAdmin() {
			response.Forbidden(w, "No tienes permisos para acceder a esta sección.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
