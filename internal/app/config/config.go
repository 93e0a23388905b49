package config

import (
	"citabot-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "citabot"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "citabot-logos"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                             utils.GetEnvString("APP_ENV", "development"),
			Port:                            utils.GetEnvString("APP_PORT", ":8080"),
			Version:                         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                        utils.GetEnvString("APP_TIMEZONE", "America/Bogota"),
			EndpointPrefix:                  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			LoginSessionExpiredTimeInHours:  utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 12),
			VinculacionExpiredTimeInMinutes: utils.GetEnvInt("APP_VINCULACION_EXPIRED_TIME_IN_MINUTES", 30),
			CookieSecure:                    utils.GetEnvBool("APP_COOKIE_SECURE", false),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Meta: Meta{
			AppID:        utils.GetEnvString("META_APP_ID", ""),
			AppSecret:    utils.GetEnvString("META_APP_SECRET", ""),
			RedirectURL:  utils.GetEnvString("META_REDIRECT_URL", "http://localhost:5173/whatsapp/callback"),
			GraphBaseURL: utils.GetEnvString("META_GRAPH_BASE_URL", "https://graph.facebook.com/v19.0"),
			AuthorizeURL: utils.GetEnvString("META_AUTHORIZE_URL", "https://www.facebook.com/v19.0/dialog/oauth"),
			Scopes:       utils.GetEnvString("META_SCOPES", "whatsapp_business_management,whatsapp_business_messaging"),
		},
		RabbitMQ: AppRabbitMQ{
			WhatsAppQueue: utils.GetEnvString("APP_RABBITMQ_WHATSAPP_QUEUE", "citabot.whatsapp"),
		},
		Minio: AppMinio{
			LogoMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_LOGO_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		Client: Client{
			BaseURL:       utils.GetEnvString("CLIENT_BASE_URL", "http://localhost:8080"),
			StateFilePath: utils.GetEnvString("CLIENT_STATE_FILE", ""),
		},
	}
}
