package responses

import "citabot-service/internal/app/models"

type VinculacionIniciada struct {
	State        string `json:"state"`
	AuthorizeURL string `json:"authorize_url"`
}

type VinculacionCallback struct {
	State     string                    `json:"state"`
	Paso      int                       `json:"paso"`
	Telefonos []models.TelefonoWhatsApp `json:"telefonos"`
}

type VinculacionFinalizada struct {
	ConsultorioID string `json:"consultorio_id"`
	PhoneNumberID string `json:"phone_number_id"`
	Telefono      string `json:"telefono"`
}

type VinculacionStatus struct {
	State string `json:"state"`
	Paso  int    `json:"paso"`
}
