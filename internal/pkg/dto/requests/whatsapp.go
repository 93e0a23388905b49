package requests

// WhatsAppEvent is the payload published to the WhatsApp queue when a
// consultorio completes the linking wizard.
type WhatsAppEvent struct {
	Evento        string `json:"evento"`
	ConsultorioID string `json:"consultorio_id"`
	PhoneNumberID string `json:"phone_number_id"`
	Telefono      string `json:"telefono"`
}
