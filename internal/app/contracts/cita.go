package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type CitaUsecase interface {
	Dashboard(ctx context.Context, consultorioID string, desde, hasta time.Time) (*responses.DashboardCitas, error)
}

type CitaRepository interface {
	FindByConsultorioAndRange(ctx context.Context, consultorioID string, desde, hasta time.Time) ([]models.Cita, error)
}
