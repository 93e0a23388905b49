package consultorios

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type consultorioUsecase struct {
	ConsultorioRepository contracts.ConsultorioRepository
	StorageService        contracts.StorageService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	consultorioUsecaseInstance contracts.ConsultorioUsecase
	onceConsultorioUsecase     sync.Once
)

func NewConsultorioUsecase(
	consultorioRepository contracts.ConsultorioRepository,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConsultorioUsecase {
	onceConsultorioUsecase.Do(func() {
		consultorioUsecaseInstance = &consultorioUsecase{
			ConsultorioRepository: consultorioRepository,
			StorageService:        storageService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return consultorioUsecaseInstance
}

func (uc *consultorioUsecase) CreateConsultorio(ctx context.Context, request *requests.CreateConsultorio) (*models.Consultorio, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultorioUsecase.CreateConsultorio called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	consultorio := &models.Consultorio{
		Nombre:    request.Nombre,
		Direccion: request.Direccion,
		Telefono:  request.Telefono,
		Activo:    true,
	}
	consultorioID, err := uc.ConsultorioRepository.CreateConsultorio(ctx, consultorio)
	if err != nil {
		return nil, err
	}
	return uc.ConsultorioRepository.FindByID(ctx, consultorioID)
}

func (uc *consultorioUsecase) GetConsultorio(ctx context.Context, consultorioID string) (*models.Consultorio, error) {
	consultorio, err := uc.ConsultorioRepository.FindByID(ctx, consultorioID)
	if err != nil {
		return nil, err
	}
	if consultorio == nil {
		return nil, exceptions.ErrConsultorioNotFound()
	}
	return consultorio, nil
}

func (uc *consultorioUsecase) ListConsultorios(ctx context.Context) ([]models.Consultorio, error) {
	return uc.ConsultorioRepository.FindAll(ctx)
}

func (uc *consultorioUsecase) UpdateConsultorio(ctx context.Context, consultorioID string, request *requests.UpdateConsultorio) (*models.Consultorio, error) {
	consultorio, err := uc.GetConsultorio(ctx, consultorioID)
	if err != nil {
		return nil, err
	}

	if request.Nombre != "" {
		consultorio.Nombre = request.Nombre
	}
	if request.Direccion != "" {
		consultorio.Direccion = request.Direccion
	}
	if request.Telefono != "" {
		consultorio.Telefono = request.Telefono
	}
	if request.Activo != nil {
		consultorio.Activo = *request.Activo
	}

	if err := uc.ConsultorioRepository.UpdateConsultorio(ctx, consultorio); err != nil {
		return nil, err
	}
	return consultorio, nil
}

func (uc *consultorioUsecase) DeleteConsultorio(ctx context.Context, consultorioID string) error {
	if _, err := uc.GetConsultorio(ctx, consultorioID); err != nil {
		return err
	}
	return uc.ConsultorioRepository.DeleteConsultorio(ctx, consultorioID)
}

// UploadLogo stores the image under a consultorio-scoped object name so a
// re-upload replaces the previous logo.
func (uc *consultorioUsecase) UploadLogo(ctx context.Context, consultorioID, filename string, size int64, reader io.Reader) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("consultorioUsecase.UploadLogo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultorioKey, consultorioID),
	)

	consultorio, err := uc.GetConsultorio(ctx, consultorioID)
	if err != nil {
		return "", err
	}

	maxSize := int64(uc.InternalConfig.Minio.LogoMaxUploadSizeInMB) * 1024 * 1024
	if size <= 0 || size > maxSize {
		return "", exceptions.ErrImageValidation(fmt.Errorf("logo size %d bytes out of bounds", size))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType := mime.TypeByExtension(ext)
	if !strings.HasPrefix(contentType, "image/") {
		return "", exceptions.ErrImageValidation(fmt.Errorf("unsupported logo extension %q", ext))
	}

	objectName := fmt.Sprintf("consultorios/%s/logo%s", consultorioID, ext)
	if _, err := uc.StorageService.UploadObject(ctx, objectName, contentType, size, reader); err != nil {
		return "", err
	}

	consultorio.LogoURL = objectName
	if err := uc.ConsultorioRepository.UpdateConsultorio(ctx, consultorio); err != nil {
		return "", err
	}
	return objectName, nil
}
