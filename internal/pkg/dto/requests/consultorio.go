package requests

type CreateConsultorio struct {
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Direccion string `json:"direccion" validate:"required"`
	Telefono  string `json:"telefono,omitempty"`
}

type UpdateConsultorio struct {
	Nombre    string `json:"nombre,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Activo    *bool  `json:"activo,omitempty"`
}
