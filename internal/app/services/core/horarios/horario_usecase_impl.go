package horarios

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type horarioUsecase struct {
	HorarioRepository contracts.HorarioRepository
	Log               *zap.Logger
}

var (
	horarioUsecaseInstance contracts.HorarioUsecase
	onceHorarioUsecase     sync.Once
)

func NewHorarioUsecase(horarioRepository contracts.HorarioRepository, logger *zap.Logger) contracts.HorarioUsecase {
	onceHorarioUsecase.Do(func() {
		horarioUsecaseInstance = &horarioUsecase{
			HorarioRepository: horarioRepository,
			Log:               logger,
		}
	})
	return horarioUsecaseInstance
}

func (uc *horarioUsecase) UpsertHorario(ctx context.Context, consultorioID string, request *requests.UpsertHorario) (*models.Horario, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("horarioUsecase.UpsertHorario called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultorioKey, consultorioID),
		zap.Int("dia_semana", request.DiaSemana),
	)

	apertura, err := parseHoraLocal(request.Apertura)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	cierre, err := parseHoraLocal(request.Cierre)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !cierre.After(apertura) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("cierre %s must be after apertura %s", request.Cierre, request.Apertura))
	}

	horario := &models.Horario{
		ConsultorioID: consultorioID,
		DiaSemana:     request.DiaSemana,
		Apertura:      request.Apertura,
		Cierre:        request.Cierre,
		SlotMinutos:   request.SlotMinutos,
	}
	if err := uc.HorarioRepository.UpsertHorario(ctx, horario); err != nil {
		return nil, err
	}
	return horario, nil
}

func (uc *horarioUsecase) ListHorarios(ctx context.Context, consultorioID string) ([]models.Horario, error) {
	return uc.HorarioRepository.FindByConsultorio(ctx, consultorioID)
}

func (uc *horarioUsecase) DeleteHorario(ctx context.Context, consultorioID string, diaSemana int) error {
	return uc.HorarioRepository.DeleteHorario(ctx, consultorioID, diaSemana)
}

func parseHoraLocal(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour %q, want HH:MM: %w", value, err)
	}
	return t, nil
}
