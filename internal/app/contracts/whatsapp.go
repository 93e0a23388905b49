package contracts

import (
	"citabot-service/internal/pkg/dto/requests"
	"context"
)

type WhatsAppService interface {
	PublishEvent(ctx context.Context, event *requests.WhatsAppEvent) error
}
