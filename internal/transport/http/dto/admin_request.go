package dto

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (r *SetUserActiveRequest) Validate() error {
	return runValidate(r)
}
