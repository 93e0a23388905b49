package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"context"
)

type HorarioUsecase interface {
	UpsertHorario(ctx context.Context, consultorioID string, request *requests.UpsertHorario) (*models.Horario, error)
	ListHorarios(ctx context.Context, consultorioID string) ([]models.Horario, error)
	DeleteHorario(ctx context.Context, consultorioID string, diaSemana int) error
}

type HorarioRepository interface {
	UpsertHorario(ctx context.Context, horario *models.Horario) error
	FindByConsultorio(ctx context.Context, consultorioID string) ([]models.Horario, error)
	DeleteHorario(ctx context.Context, consultorioID string, diaSemana int) error
}
