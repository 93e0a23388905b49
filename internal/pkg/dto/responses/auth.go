package responses

import "citabot-service/internal/app/models"

type Login struct {
	User *models.UserProfile `json:"user"`
}

type Me struct {
	User *models.UserProfile `json:"user"`
}
