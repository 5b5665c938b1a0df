package models

// UserInfo is the user summary returned alongside a freshly issued token
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Token string   `json:"token"` // JWT token
	User  UserInfo `json:"user"`
}
