package dto

/* ==============================
   REGISTER (POST /api/auth/register)
============================== */

type RegisterRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	InstitutionID string `json:"institutionId" validate:"required,uuid"`
}

/* ==============================
   LOGIN (POST /api/auth/login)
============================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries the ID token issued by Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         LoginUserDTO `json:"user"`
}

type LoginUserDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	InstitutionID string `json:"institutionId,omitempty"`
}
