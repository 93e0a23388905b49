package models

import "time"

const (
	VinculacionPasoAutorizacion = 1
	VinculacionPasoSeleccion    = 2
	VinculacionPasoCompletado   = 3
)

// VinculacionEstado is the server-held state of one WhatsApp Business OAuth
// linking wizard run, keyed in redis by State.
type VinculacionEstado struct {
	State         string             `json:"state"`
	ConsultorioID string             `json:"consultorio_id"`
	UsuarioID     string             `json:"usuario_id"`
	Paso          int                `json:"paso"`
	AccessToken   string             `json:"access_token,omitempty"`
	WabaID        string             `json:"waba_id,omitempty"`
	Telefonos     []TelefonoWhatsApp `json:"telefonos,omitempty"`
	PhoneNumberID string             `json:"phone_number_id,omitempty"`
	IniciadoEn    time.Time          `json:"iniciado_en"`
	CompletadoEn  *time.Time         `json:"completado_en,omitempty"`
}

type TelefonoWhatsApp struct {
	PhoneNumberID string `json:"phone_number_id"`
	Numero        string `json:"numero"`
	Verificado    bool   `json:"verificado"`
}
