package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_PROFILE_KEY              ContextKey = "profile"
	CONTEXT_EVALUATOR_KEY            ContextKey = "evaluator"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"

	SessionCookieName = "citabot_session"
	SessionKeyPrefix  = "session:"

	VinculacionKeyPrefix = "vinculacion:"

	// Fixed key the admin client persists its session state under.
	ClientStateKey = "citabot_admin_state"
)

const (
	RolSuperadmin = "SUPERADMIN"

	EventWhatsAppVinculado = "whatsapp.vinculado"
)
