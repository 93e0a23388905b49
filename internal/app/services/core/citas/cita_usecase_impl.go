package citas

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/responses"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type citaUsecase struct {
	CitaRepository contracts.CitaRepository
	Log            *zap.Logger
}

var (
	citaUsecaseInstance contracts.CitaUsecase
	onceCitaUsecase     sync.Once
)

func NewCitaUsecase(citaRepository contracts.CitaRepository, logger *zap.Logger) contracts.CitaUsecase {
	onceCitaUsecase.Do(func() {
		citaUsecaseInstance = &citaUsecase{
			CitaRepository: citaRepository,
			Log:            logger,
		}
	})
	return citaUsecaseInstance
}

// Dashboard summarizes the consultorio's citas inside [desde, hasta): the
// full list ordered by start time plus per-estado counts.
func (uc *citaUsecase) Dashboard(ctx context.Context, consultorioID string, desde, hasta time.Time) (*responses.DashboardCitas, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("citaUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultorioKey, consultorioID),
		zap.Time("desde", desde),
		zap.Time("hasta", hasta),
	)

	citas, err := uc.CitaRepository.FindByConsultorioAndRange(ctx, consultorioID, desde, hasta)
	if err != nil {
		return nil, err
	}

	porEstado := make(map[string]int)
	for _, cita := range citas {
		porEstado[cita.Estado]++
	}

	return &responses.DashboardCitas{
		ConsultorioID: consultorioID,
		Total:         len(citas),
		PorEstado:     porEstado,
		Citas:         citas,
	}, nil
}
