package dto

// LoginRequest entrée de /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse identité publique d'un compte (jamais le hash).
type UserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse token signé + identité du compte.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
