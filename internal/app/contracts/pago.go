package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"context"
)

type PagoUsecase interface {
	UpsertMetodoPago(ctx context.Context, consultorioID string, request *requests.UpsertMetodoPago) (*models.MetodoPago, error)
	ListMetodosPago(ctx context.Context, consultorioID string) ([]models.MetodoPago, error)
	DeleteMetodoPago(ctx context.Context, consultorioID, tipo string) error
}

type PagoRepository interface {
	UpsertMetodoPago(ctx context.Context, metodo *models.MetodoPago) error
	FindByConsultorio(ctx context.Context, consultorioID string) ([]models.MetodoPago, error)
	FindByConsultorioAndTipo(ctx context.Context, consultorioID, tipo string) (*models.MetodoPago, error)
	DeleteMetodoPago(ctx context.Context, consultorioID, tipo string) error
}
