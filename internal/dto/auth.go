package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3" example:"trader1"`
	Password string `json:"password" validate:"required,min=8" example:"s3cr3tpass"`
}

func (r *RegisterRequestDTO) Validate() error {
	return validate.Struct(r)
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required" example:"trader1"`
	Password string `json:"password" validate:"required" example:"s3cr3tpass"`
}

func (r *LoginRequestDTO) Validate() error {
	return validate.Struct(r)
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
