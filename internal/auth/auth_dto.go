package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the account shape exposed over HTTP; the password
// hash never leaves the service.
type UserResponse struct {
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	Active      bool    `json:"active"`
	CreatedDate string  `json:"createdDate"`
	LastLogin   *string `json:"lastLogin,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type ToggleActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
