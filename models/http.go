package models

// RegisterRequest is the JSON body accepted by POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the non-sensitive subset of a newly created account
// returned by POST /auth/register.
type RegisterResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest is the JSON body accepted by POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token returned by POST /auth/login.
//
// TokenType is always "bearer"; the client sends the token back in the
// "Authorization: Bearer <token>" header on protected routes.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateEntryRequest is the JSON body accepted by POST /journals/.
// The owner is never part of the request; it is taken from the
// authenticated identity.
type CreateEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HealthResponse is the body of GET /healthcheck.
type HealthResponse struct {
	Status string `json:"status"`
}
