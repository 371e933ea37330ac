package http

import (
	"net/http"

	"psych-portal-api/internal/delivery/http/handler"
	"psych-portal-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	professionalHandler *handler.ProfessionalHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	sessionHandler      *handler.SessionHandler
	adminHandler        *handler.AdminHandler
	sessionMiddleware   *middleware.SessionMiddleware
	clientURL           string
	log                 *logrus.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	professionalHandler *handler.ProfessionalHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	sessionHandler *handler.SessionHandler,
	adminHandler *handler.AdminHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	clientURL string,
	log *logrus.Logger,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		professionalHandler: professionalHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		sessionHandler:      sessionHandler,
		adminHandler:        adminHandler,
		sessionMiddleware:   sessionMiddleware,
		clientURL:           clientURL,
		log:                 log,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes are public. The browser lands here before any session exists.
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/google", r.authHandler.GoogleLogin).Methods(http.MethodGet)
	auth.HandleFunc("/google/callback", r.authHandler.GoogleCallback).Methods(http.MethodGet)

	// /me reports authentication state, so it must not be hard-gated
	authOptional := api.PathPrefix("/auth").Subrouter()
	authOptional.Use(r.sessionMiddleware.MaybeAuthenticate)
	authOptional.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authOptional.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Professional profile
	professionals := api.PathPrefix("/professionals").Subrouter()
	professionals.Use(r.sessionMiddleware.Authenticate)
	professionals.HandleFunc("/me", r.professionalHandler.GetProfile).Methods(http.MethodGet)
	professionals.HandleFunc("/me", r.professionalHandler.UpdateProfile).Methods(http.MethodPut)

	// Patients and family contacts
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.sessionMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.SearchPatients).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("/contacts/{contactId}", r.patientHandler.UpdateContact).Methods(http.MethodPut)
	patients.HandleFunc("/contacts/{contactId}", r.patientHandler.DeleteContact).Methods(http.MethodDelete)
	patients.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	patients.HandleFunc("/{id}/contacts", r.patientHandler.ListContacts).Methods(http.MethodGet)
	patients.HandleFunc("/{id}/contacts", r.patientHandler.CreateContact).Methods(http.MethodPost)

	// Appointments
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.sessionMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointments).Methods(http.MethodPost)
	appointments.HandleFunc("/week", r.appointmentHandler.GetWeek).Methods(http.MethodGet)
	appointments.HandleFunc("/stats", r.appointmentHandler.GetStats).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	appointments.HandleFunc("/{id}/session", r.sessionHandler.CreateSession).Methods(http.MethodPost)

	// Consultation sessions
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(r.sessionMiddleware.Authenticate)
	sessions.HandleFunc("", r.sessionHandler.ListSessions).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", r.sessionHandler.GetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", r.sessionHandler.UpdateSession).Methods(http.MethodPut)
	sessions.HandleFunc("/{id}", r.sessionHandler.DeleteSession).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.sessionMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/professionals", r.adminHandler.ListProfessionals).Methods(http.MethodGet)
	admin.HandleFunc("/professionals/{id}/toggle-status", r.adminHandler.ToggleProfessionalStatus).Methods(http.MethodPatch)

	r.router.Use(middleware.CORS(r.clientURL))
	r.router.Use(middleware.RequestLogger(r.log))

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
