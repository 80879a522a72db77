package auth

// RegisterRequest captures the credentials sent to the register endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterResponse echoes the created username and nothing else.
type RegisterResponse struct {
	Username string `json:"username"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the bearer token produced by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
