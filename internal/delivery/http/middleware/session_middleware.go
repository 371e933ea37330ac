package middleware

import (
	"context"
	"net/http"

	"psych-portal-api/internal/domain/entity"
	"psych-portal-api/internal/domain/repository"
	"psych-portal-api/internal/service"
	"psych-portal-api/pkg/response"

	"gorm.io/gorm"
)

type contextKey string

const ProfessionalKey contextKey = "professional"

type SessionMiddleware struct {
	db               *gorm.DB
	sessionService   service.SessionService
	professionalRepo repository.ProfessionalRepository
}

func NewSessionMiddleware(
	db *gorm.DB,
	sessionService service.SessionService,
	professionalRepo repository.ProfessionalRepository,
) *SessionMiddleware {
	return &SessionMiddleware{
		db:               db,
		sessionService:   sessionService,
		professionalRepo: professionalRepo,
	}
}

// Authenticate resolves the session cookie into the professional principal
// and threads it through the request context.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(service.CookieName)
		if err != nil {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		professionalID, err := m.sessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		professional, err := m.professionalRepo.FindByID(m.db.WithContext(r.Context()), professionalID)
		if err != nil {
			response.InternalServerError(w, "Failed to load session principal")
			return
		}
		// A session outliving a deactivation must stop working immediately.
		if professional == nil || !professional.IsActive {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ProfessionalKey, professional)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MaybeAuthenticate injects the principal when a valid session cookie is
// present but lets the request through either way. Used by endpoints that
// report authentication state instead of requiring it.
func (m *SessionMiddleware) MaybeAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(service.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		professionalID, err := m.sessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		professional, err := m.professionalRepo.FindByID(m.db.WithContext(r.Context()), professionalID)
		if err != nil || professional == nil || !professional.IsActive {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ProfessionalKey, professional)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetProfessionalFromContext extracts the session principal from context
func GetProfessionalFromContext(ctx context.Context) (*entity.Professional, bool) {
	professional, ok := ctx.Value(ProfessionalKey).(*entity.Professional)
	return professional, ok
}
