package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"context"
	"io"
)

type ConsultorioUsecase interface {
	CreateConsultorio(ctx context.Context, request *requests.CreateConsultorio) (*models.Consultorio, error)
	GetConsultorio(ctx context.Context, consultorioID string) (*models.Consultorio, error)
	ListConsultorios(ctx context.Context) ([]models.Consultorio, error)
	UpdateConsultorio(ctx context.Context, consultorioID string, request *requests.UpdateConsultorio) (*models.Consultorio, error)
	DeleteConsultorio(ctx context.Context, consultorioID string) error
	UploadLogo(ctx context.Context, consultorioID, filename string, size int64, reader io.Reader) (string, error)
}

type ConsultorioRepository interface {
	CreateConsultorio(ctx context.Context, consultorio *models.Consultorio) (string, error)
	FindByID(ctx context.Context, consultorioID string) (*models.Consultorio, error)
	FindByIDs(ctx context.Context, consultorioIDs []string) ([]models.Consultorio, error)
	FindAll(ctx context.Context) ([]models.Consultorio, error)
	UpdateConsultorio(ctx context.Context, consultorio *models.Consultorio) error
	DeleteConsultorio(ctx context.Context, consultorioID string) error
}
