package vinculacion

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/dto/responses"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// vinculacionUsecase drives the three-step WhatsApp Business linking
// wizard. The per-run state lives in redis under the state token, so any
// instance can serve any step.
type vinculacionUsecase struct {
	RedisRepository       contracts.RedisRepository
	ConsultorioRepository contracts.ConsultorioRepository
	MetaOAuthClient       contracts.MetaOAuthClient
	WhatsAppService       contracts.WhatsAppService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	vinculacionUsecaseInstance contracts.VinculacionUsecase
	onceVinculacionUsecase     sync.Once
)

func NewVinculacionUsecase(
	redisRepository contracts.RedisRepository,
	consultorioRepository contracts.ConsultorioRepository,
	metaOAuthClient contracts.MetaOAuthClient,
	whatsAppService contracts.WhatsAppService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.VinculacionUsecase {
	onceVinculacionUsecase.Do(func() {
		vinculacionUsecaseInstance = &vinculacionUsecase{
			RedisRepository:       redisRepository,
			ConsultorioRepository: consultorioRepository,
			MetaOAuthClient:       metaOAuthClient,
			WhatsAppService:       whatsAppService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return vinculacionUsecaseInstance
}

func (uc *vinculacionUsecase) Iniciar(ctx context.Context, usuarioID string, request *requests.IniciarVinculacion) (*responses.VinculacionIniciada, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vinculacionUsecase.Iniciar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultorioKey, request.ConsultorioID),
		zap.String(constvars.LoggingUsuarioIDKey, usuarioID),
	)

	consultorio, err := uc.ConsultorioRepository.FindByID(ctx, request.ConsultorioID)
	if err != nil {
		return nil, err
	}
	if consultorio == nil {
		return nil, exceptions.ErrConsultorioNotFound()
	}

	estado := &models.VinculacionEstado{
		State:         utils.GenerateStateToken(),
		ConsultorioID: request.ConsultorioID,
		UsuarioID:     usuarioID,
		Paso:          models.VinculacionPasoAutorizacion,
		IniciadoEn:    time.Now(),
	}
	if err := uc.saveEstado(ctx, estado); err != nil {
		return nil, err
	}

	meta := uc.InternalConfig.Meta
	query := url.Values{}
	query.Set("client_id", meta.AppID)
	query.Set("redirect_uri", meta.RedirectURL)
	query.Set("scope", meta.Scopes)
	query.Set("response_type", "code")
	query.Set("state", estado.State)

	return &responses.VinculacionIniciada{
		State:        estado.State,
		AuthorizeURL: fmt.Sprintf("%s?%s", meta.AuthorizeURL, query.Encode()),
	}, nil
}

func (uc *vinculacionUsecase) Callback(ctx context.Context, request *requests.CallbackVinculacion) (*responses.VinculacionCallback, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vinculacionUsecase.Callback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	estado, err := uc.loadEstado(ctx, request.State)
	if err != nil {
		return nil, err
	}
	if estado.Paso != models.VinculacionPasoAutorizacion {
		return nil, exceptions.ErrVinculacionWrongStep(estado.Paso)
	}

	accessToken, wabaID, err := uc.MetaOAuthClient.ExchangeCode(ctx, request.Code)
	if err != nil {
		return nil, err
	}
	telefonos, err := uc.MetaOAuthClient.ListPhoneNumbers(ctx, accessToken, wabaID)
	if err != nil {
		return nil, err
	}

	estado.Paso = models.VinculacionPasoSeleccion
	estado.AccessToken = accessToken
	estado.WabaID = wabaID
	estado.Telefonos = telefonos
	if err := uc.saveEstado(ctx, estado); err != nil {
		return nil, err
	}

	return &responses.VinculacionCallback{
		State:     estado.State,
		Paso:      estado.Paso,
		Telefonos: telefonos,
	}, nil
}

func (uc *vinculacionUsecase) Finalizar(ctx context.Context, request *requests.FinalizarVinculacion) (*responses.VinculacionFinalizada, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("vinculacionUsecase.Finalizar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	estado, err := uc.loadEstado(ctx, request.State)
	if err != nil {
		return nil, err
	}
	if estado.Paso != models.VinculacionPasoSeleccion {
		return nil, exceptions.ErrVinculacionWrongStep(estado.Paso)
	}

	var elegido *models.TelefonoWhatsApp
	for i := range estado.Telefonos {
		if estado.Telefonos[i].PhoneNumberID == request.PhoneNumberID {
			elegido = &estado.Telefonos[i]
			break
		}
	}
	if elegido == nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("phone_number_id %s was not offered in this run", request.PhoneNumberID))
	}

	consultorio, err := uc.ConsultorioRepository.FindByID(ctx, estado.ConsultorioID)
	if err != nil {
		return nil, err
	}
	if consultorio == nil {
		return nil, exceptions.ErrConsultorioNotFound()
	}

	consultorio.WhatsApp = &models.WhatsAppVinculo{
		WabaID:        estado.WabaID,
		PhoneNumberID: elegido.PhoneNumberID,
		Telefono:      elegido.Numero,
		VinculadoPor:  estado.UsuarioID,
	}
	if err := uc.ConsultorioRepository.UpdateConsultorio(ctx, consultorio); err != nil {
		return nil, err
	}

	now := time.Now()
	estado.Paso = models.VinculacionPasoCompletado
	estado.PhoneNumberID = elegido.PhoneNumberID
	estado.CompletadoEn = &now
	estado.AccessToken = ""
	if err := uc.saveEstado(ctx, estado); err != nil {
		return nil, err
	}

	event := &requests.WhatsAppEvent{
		Evento:        constvars.EventWhatsAppVinculado,
		ConsultorioID: estado.ConsultorioID,
		PhoneNumberID: elegido.PhoneNumberID,
		Telefono:      elegido.Numero,
	}
	if err := uc.WhatsAppService.PublishEvent(ctx, event); err != nil {
		// The link itself is committed; the bot side catches up on the next
		// event, so a publish failure is logged and not surfaced.
		uc.Log.Error("vinculacionUsecase.Finalizar failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingConsultorioKey, estado.ConsultorioID),
			zap.Error(err),
		)
	}

	return &responses.VinculacionFinalizada{
		ConsultorioID: estado.ConsultorioID,
		PhoneNumberID: elegido.PhoneNumberID,
		Telefono:      elegido.Numero,
	}, nil
}

func (uc *vinculacionUsecase) Status(ctx context.Context, state string) (*responses.VinculacionStatus, error) {
	estado, err := uc.loadEstado(ctx, state)
	if err != nil {
		return nil, err
	}
	return &responses.VinculacionStatus{
		State: estado.State,
		Paso:  estado.Paso,
	}, nil
}

func (uc *vinculacionUsecase) saveEstado(ctx context.Context, estado *models.VinculacionEstado) error {
	ttl := time.Duration(uc.InternalConfig.App.VinculacionExpiredTimeInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, constvars.VinculacionKeyPrefix+estado.State, estado, ttl)
}

func (uc *vinculacionUsecase) loadEstado(ctx context.Context, state string) (*models.VinculacionEstado, error) {
	raw, err := uc.RedisRepository.Get(ctx, constvars.VinculacionKeyPrefix+state)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrVinculacionNotFound()
	}
	var estado models.VinculacionEstado
	if err := json.Unmarshal([]byte(raw), &estado); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return &estado, nil
}
