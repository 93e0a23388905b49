package responses

import "citabot-service/internal/app/models"

type DashboardCitas struct {
	ConsultorioID string         `json:"consultorio_id"`
	Total         int            `json:"total"`
	PorEstado     map[string]int `json:"por_estado"`
	Citas         []models.Cita  `json:"citas"`
}
