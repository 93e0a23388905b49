package whatsapp

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type whatsAppService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	whatsAppServiceInstance contracts.WhatsAppService
	onceWhatsAppService     sync.Once
	whatsAppServiceError    error
)

func NewWhatsAppService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.WhatsAppService, error) {
	onceWhatsAppService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			whatsAppServiceError = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			whatsAppServiceError = err
			return
		}
		whatsAppServiceInstance = &whatsAppService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return whatsAppServiceInstance, whatsAppServiceError
}

func (s *whatsAppService) PublishEvent(ctx context.Context, event *requests.WhatsAppEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("whatsAppService.PublishEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultorioKey, event.ConsultorioID),
		zap.String("evento", event.Evento),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrWhatsAppPublish(err)
	}
	return nil
}
