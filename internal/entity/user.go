package entity

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterRequest is the payload forwarded to the remote user service.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest carries the submitted credentials. The remote user
// service exposes no verification endpoint, so the password never
// leaves the storefront on login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
}

// AuthResponse is what the storefront hands back instead of a raw
// user record: an opaque session token plus the profile for display.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
