package pagos

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.uber.org/zap"
)

type pagoUsecase struct {
	PagoRepository contracts.PagoRepository
	Log            *zap.Logger
}

var (
	pagoUsecaseInstance contracts.PagoUsecase
	oncePagoUsecase     sync.Once
)

func NewPagoUsecase(pagoRepository contracts.PagoRepository, logger *zap.Logger) contracts.PagoUsecase {
	oncePagoUsecase.Do(func() {
		pagoUsecaseInstance = &pagoUsecase{
			PagoRepository: pagoRepository,
			Log:            logger,
		}
	})
	return pagoUsecaseInstance
}

func (uc *pagoUsecase) UpsertMetodoPago(ctx context.Context, consultorioID string, request *requests.UpsertMetodoPago) (*models.MetodoPago, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pagoUsecase.UpsertMetodoPago called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultorioKey, consultorioID),
		zap.String("tipo", request.Tipo),
	)

	habilitado := true
	if request.Habilitado != nil {
		habilitado = *request.Habilitado
	}

	metodo := &models.MetodoPago{
		ConsultorioID:  consultorioID,
		Tipo:           request.Tipo,
		NombreMostrado: request.NombreMostrado,
		Cuenta:         request.Cuenta,
		Habilitado:     habilitado,
	}
	if err := uc.PagoRepository.UpsertMetodoPago(ctx, metodo); err != nil {
		return nil, err
	}
	return uc.PagoRepository.FindByConsultorioAndTipo(ctx, consultorioID, request.Tipo)
}

func (uc *pagoUsecase) ListMetodosPago(ctx context.Context, consultorioID string) ([]models.MetodoPago, error) {
	return uc.PagoRepository.FindByConsultorio(ctx, consultorioID)
}

func (uc *pagoUsecase) DeleteMetodoPago(ctx context.Context, consultorioID, tipo string) error {
	metodo, err := uc.PagoRepository.FindByConsultorioAndTipo(ctx, consultorioID, tipo)
	if err != nil {
		return err
	}
	if metodo == nil {
		return exceptions.ErrMetodoPagoNotFound()
	}
	return uc.PagoRepository.DeleteMetodoPago(ctx, consultorioID, tipo)
}
