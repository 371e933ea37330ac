package dto

// MeResponse is the payload of GET /api/auth/me.
type MeResponse struct {
	Authenticated bool                  `json:"authenticated"`
	User          *ProfessionalResponse `json:"user,omitempty"`
}
