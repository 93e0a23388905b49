package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Meta     Meta
	RabbitMQ AppRabbitMQ
	Minio    AppMinio
	Client   Client
}

type App struct {
	Env                             string
	Port                            string
	Version                         string
	Timezone                        string
	EndpointPrefix                  string
	MaxRequests                     int
	ShutdownTimeout                 int
	LoginSessionExpiredTimeInHours  int
	VinculacionExpiredTimeInMinutes int
	CookieSecure                    bool
}

type JWT struct {
	Secret string
}

// Meta holds the WhatsApp Business OAuth (Meta Graph API) settings.
type Meta struct {
	AppID        string
	AppSecret    string
	RedirectURL  string
	GraphBaseURL string
	AuthorizeURL string
	Scopes       string
}

type AppRabbitMQ struct {
	WhatsAppQueue string
}

type AppMinio struct {
	LogoMaxUploadSizeInMB int
}

// Client configures the admin client core (adminctl and tests).
type Client struct {
	BaseURL       string
	StateFilePath string
}
