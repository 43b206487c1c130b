package dto

// RegisterRequest carries no role field. Registration is public, so every new
// account starts as a member; roles only change through the admin surface.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
}

func (r *RegisterRequest) Validate() error {
	return runValidate(r)
}

// LoginRequest deliberately skips format checks beyond presence; a malformed
// email fails authentication like any other wrong credential.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return runValidate(r)
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (r *PasswordChangeRequest) Validate() error {
	return runValidate(r)
}
