package dto

type PanelSetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

func (r *PanelSetPasswordRequest) Validate() error {
	return runValidate(r)
}

type PanelVerifyRequest struct {
	Password string `json:"password" validate:"required"`
}

func (r *PanelVerifyRequest) Validate() error {
	return runValidate(r)
}
