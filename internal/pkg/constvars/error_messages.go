package constvars

// Client messages are user-facing (Spanish UI); dev messages feed the logs.
const (
	ErrClientCannotProcessRequest     = "No se pudo procesar la solicitud, revise los datos enviados"
	ErrClientSomethingWrongWithApp    = "Algo salió mal, intente nuevamente más tarde"
	ErrClientServerLongRespond        = "El servidor tardó demasiado en responder, intente nuevamente"
	ErrClientCredencialesInvalidas    = "Usuario o contraseña inválidos"
	ErrClientSesionExpirada           = "Su sesión ha expirado, inicie sesión nuevamente"
	ErrClientNoAutenticado            = "Debe iniciar sesión para continuar"
	ErrClientNoAutorizado             = "No tiene permisos para realizar esta acción"
	ErrClientUsuarioYaExiste          = "Ya existe un usuario con ese correo o nombre de usuario"
	ErrClientUsuarioNoEncontrado      = "Usuario no encontrado"
	ErrClientRolNoEncontrado          = "Rol no encontrado"
	ErrClientConsultorioNoEncontrado  = "Consultorio no encontrado"
	ErrClientCitaNoEncontrada         = "Cita no encontrada"
	ErrClientRolGlobalYConsultorio    = "Un usuario no puede tener rol global y roles por consultorio a la vez"
	ErrClientVinculacionNoEncontrada  = "Proceso de vinculación no encontrado o expirado"
	ErrClientVinculacionPasoInvalido  = "El proceso de vinculación no está en el paso esperado"
	ErrClientImagenInvalida           = "El formato de la imagen no es válido"
	ErrClientMetodoPagoNoEncontrado   = "Método de pago no encontrado"
	ErrClientHorarioNoEncontrado      = "Horario no encontrado"
	ErrClientPermisoFormatoInvalido   = "El formato del permiso debe ser MODULO:ACCION"
	ErrClientWhatsAppProveedorFallo   = "No se pudo completar la vinculación con WhatsApp Business"
	ErrClientSesionNoDisponible       = "No hay una sesión activa"
)

const (
	ErrDevCannotParseJSON           = "Failed to parse JSON body"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevInvalidCredentials        = "Invalid identifier or password"
	ErrDevAuthTokenMissing          = "Session cookie missing"
	ErrDevAuthTokenInvalid          = "Session token invalid or expired"
	ErrDevAuthInvalidSession        = "Session not found in redis"
	ErrDevAuthGenerateToken         = "Failed to sign session token"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevFailedToHashPassword      = "Failed to hash password with bcrypt"
	ErrDevUserAlreadyExists         = "User with given email or username already exists"
	ErrDevUserNotExists             = "User does not exist"
	ErrDevRolNotExists              = "Rol does not exist"
	ErrDevConsultorioNotExists      = "Consultorio does not exist"
	ErrDevCitaNotExists             = "Cita does not exist"
	ErrDevGlobalAndScopedRoles      = "Global role and per-consultorio roles are mutually exclusive"
	ErrDevRedisSet                  = "Failed to set value in redis"
	ErrDevRedisGet                  = "Failed to get value from redis, key: %s"
	ErrDevRedisDelete               = "Failed to delete key from redis"
	ErrDevRedisStoreSession         = "Failed to store session in redis"
	ErrDevMongoInsertDocument       = "Failed to insert document into mongodb"
	ErrDevMongoNotObjectID          = "Given ID is not a valid mongodb ObjectID"
	ErrDevMongoFindDocument         = "Failed to find document in mongodb"
	ErrDevMongoUpdateDocument       = "Failed to update document in mongodb"
	ErrDevMongoDeleteDocument       = "Failed to delete document in mongodb"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCannotUnmarshalJSON       = "Failed to unmarshal JSON value"
	ErrDevServerDeadlineExceeded    = "Deadline exceeded while processing request"
	ErrDevVinculacionNotFound       = "Vinculacion state not found or expired"
	ErrDevVinculacionWrongStep      = "Vinculacion state is not at the expected step, got step: %d"
	ErrDevWhatsAppExchangeFailed    = "Meta OAuth code exchange failed"
	ErrDevWhatsAppPhoneListFailed   = "Meta phone number listing failed"
	ErrDevWhatsAppPublishFailed     = "Failed to publish whatsapp event to queue"
	ErrDevMinioUpload               = "Failed to upload object to minio"
	ErrDevStatePersist              = "Failed to persist client session state"
	ErrDevStateLoad                 = "Failed to load client session state"
	ErrDevBackendRequest            = "Backend request failed"
	ErrDevBackendDecode             = "Failed to decode backend response"
)
