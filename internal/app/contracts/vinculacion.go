package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/dto/responses"
	"context"
)

type VinculacionUsecase interface {
	Iniciar(ctx context.Context, usuarioID string, request *requests.IniciarVinculacion) (*responses.VinculacionIniciada, error)
	Callback(ctx context.Context, request *requests.CallbackVinculacion) (*responses.VinculacionCallback, error)
	Finalizar(ctx context.Context, request *requests.FinalizarVinculacion) (*responses.VinculacionFinalizada, error)
	Status(ctx context.Context, state string) (*responses.VinculacionStatus, error)
}

// MetaOAuthClient wraps the Meta Graph API calls the linking wizard needs.
type MetaOAuthClient interface {
	ExchangeCode(ctx context.Context, code string) (accessToken, wabaID string, err error)
	ListPhoneNumbers(ctx context.Context, accessToken, wabaID string) ([]models.TelefonoWhatsApp, error)
}
