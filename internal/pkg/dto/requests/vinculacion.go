package requests

type IniciarVinculacion struct {
	ConsultorioID string `json:"consultorio_id" validate:"required"`
}

type CallbackVinculacion struct {
	State string `json:"state" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

type FinalizarVinculacion struct {
	State         string `json:"state" validate:"required"`
	PhoneNumberID string `json:"phone_number_id" validate:"required"`
}
