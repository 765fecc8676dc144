package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=patient caregiver family admin"`
}

// LoginResponse carries the role, the linked entity ID the frontend routes
// its dashboard by, and a short-lived access token.
type LoginResponse struct {
	Role  string `json:"role"`
	ID    int    `json:"id"`
	Token string `json:"token"`
}
