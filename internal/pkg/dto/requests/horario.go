package requests

type UpsertHorario struct {
	DiaSemana   int    `json:"dia_semana" validate:"min=0,max=6"`
	Apertura    string `json:"apertura" validate:"required"`
	Cierre      string `json:"cierre" validate:"required"`
	SlotMinutos int    `json:"slot_minutos" validate:"required,min=5,max=240"`
}
