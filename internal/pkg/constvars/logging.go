package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingUsuarioIDKey   = "usuario_id"
	LoggingConsultorioKey = "consultorio_id"
	LoggingSessionIDKey   = "session_id"
	LoggingEstadoKey      = "estado"
)
