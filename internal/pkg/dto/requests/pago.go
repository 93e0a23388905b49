package requests

type UpsertMetodoPago struct {
	Tipo           string `json:"tipo" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA QR"`
	NombreMostrado string `json:"nombre_mostrado" validate:"required"`
	Cuenta         string `json:"cuenta,omitempty"`
	Habilitado     *bool  `json:"habilitado,omitempty"`
}
