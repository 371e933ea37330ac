package handler

import (
	"net/http"
	"net/url"

	"psych-portal-api/config"
	"psych-portal-api/internal/converter"
	"psych-portal-api/internal/delivery/dto"
	"psych-portal-api/internal/delivery/http/middleware"
	"psych-portal-api/internal/infrastructure/oauth"
	"psych-portal-api/internal/service"
	"psych-portal-api/internal/usecase"
	"psych-portal-api/pkg/oauthstate"
	"psych-portal-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	sessionService service.SessionService
	googleClient   *oauth.GoogleClient
	stateService   *oauthstate.Service
	clientURL      string
	secureCookies  bool
	log            *logrus.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	sessionService service.SessionService,
	googleClient *oauth.GoogleClient,
	stateService *oauthstate.Service,
	cfg *config.Config,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		sessionService: sessionService,
		googleClient:   googleClient,
		stateService:   stateService,
		clientURL:      cfg.App.ClientURL,
		secureCookies:  cfg.App.Env == "production",
		log:            log,
	}
}

// GoogleLogin starts the OAuth flow by redirecting the browser to Google's
// consent screen with a signed state token.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := h.stateService.Generate()
	if err != nil {
		h.log.Warnf("Failed to generate oauth state: %+v", err)
		response.InternalServerError(w, "Failed to start login")
		return
	}

	http.Redirect(w, r, h.googleClient.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback finishes the OAuth flow. On success it opens a server-side
// session, sets the cookie and redirects back to the frontend. Flow failures
// redirect to the login page with an error code because the browser lands
// here directly; a deactivated account instead gets the 401 with its
// user-facing message, which the frontend renders on the login screen.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if errCode := r.URL.Query().Get("error"); errCode != "" {
		h.redirectWithError(w, r, "access_denied")
		return
	}

	if err := h.stateService.Verify(r.URL.Query().Get("state")); err != nil {
		h.log.Warnf("OAuth state rejected: %+v", err)
		h.redirectWithError(w, r, "invalid_state")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.redirectWithError(w, r, "missing_code")
		return
	}

	profile, err := h.googleClient.Exchange(r.Context(), code)
	if err != nil {
		h.log.Warnf("OAuth code exchange failed: %+v", err)
		h.redirectWithError(w, r, "exchange_failed")
		return
	}

	professional, err := h.authUsecase.ResolveGoogleIdentity(r.Context(), profile)
	if err != nil {
		if err == usecase.ErrAccountDisabled {
			response.Unauthorized(w, err.Error())
			return
		}
		h.log.Warnf("Failed to resolve identity: %+v", err)
		h.redirectWithError(w, r, "login_failed")
		return
	}

	session, err := h.sessionService.Create(r.Context(), professional.ID)
	if err != nil {
		h.redirectWithError(w, r, "login_failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     service.CookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(h.sessionService.Expiry().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	target := h.clientURL + "/dashboard"
	if !professional.IsComplete() {
		target = h.clientURL + "/complete-profile"
	}
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	professional, ok := middleware.GetProfessionalFromContext(r.Context())
	if !ok {
		response.JSON(w, http.StatusUnauthorized, response.Response{
			Success: false,
			Message: "Not authenticated",
			Data:    &dto.MeResponse{Authenticated: false},
		})
		return
	}

	response.Success(w, http.StatusOK, "Authenticated", &dto.MeResponse{
		Authenticated: true,
		User:          converter.ProfessionalToResponse(professional),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(service.CookieName); err == nil {
		if err := h.sessionService.Destroy(r.Context(), cookie.Value); err != nil {
			h.log.Warnf("Failed to destroy session: %+v", err)
		}
	}

	if professional, ok := middleware.GetProfessionalFromContext(r.Context()); ok {
		h.authUsecase.RecordLogout(r.Context(), professional.ID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     service.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.clientURL+"/login?error="+url.QueryEscape(code), http.StatusTemporaryRedirect)
}
