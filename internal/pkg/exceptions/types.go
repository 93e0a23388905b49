package exceptions

import (
	"citabot-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidCredentials = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientCredencialesInvalidas, constvars.ErrDevInvalidCredentials)
	}
	ErrNotAuthenticated = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNoAutenticado, constvars.ErrDevAuthTokenMissing)
	}
	ErrInvalidSession = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientSesionExpirada, constvars.ErrDevAuthInvalidSession)
	}
	ErrNotAuthorized = func() *CustomError {
		return WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNoAutorizado, constvars.ErrDevValidationFailed)
	}
	ErrHashPassword = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevFailedToHashPassword)
	}
	ErrUsuarioAlreadyExists = func() *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientUsuarioYaExiste, constvars.ErrDevUserAlreadyExists)
	}
	ErrUsuarioNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientUsuarioNoEncontrado, constvars.ErrDevUserNotExists)
	}
	ErrRolNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientRolNoEncontrado, constvars.ErrDevRolNotExists)
	}
	ErrConsultorioNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientConsultorioNoEncontrado, constvars.ErrDevConsultorioNotExists)
	}
	ErrGlobalAndScopedRoles = func() *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientRolGlobalYConsultorio, constvars.ErrDevGlobalAndScopedRoles)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevRedisDelete)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevMongoInsertDocument)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMongoNotObjectID)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevMongoFindDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevMongoUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevMongoDeleteDocument)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevCannotUnmarshalJSON)
	}
	ErrVinculacionNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientVinculacionNoEncontrada, constvars.ErrDevVinculacionNotFound)
	}
	ErrVinculacionWrongStep = func(paso int) *CustomError {
		return WrapWithoutError(constvars.StatusConflict, constvars.ErrClientVinculacionPasoInvalido, fmt.Sprintf(constvars.ErrDevVinculacionWrongStep, paso))
	}
	ErrWhatsAppExchange = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientWhatsAppProveedorFallo, constvars.ErrDevWhatsAppExchangeFailed)
	}
	ErrWhatsAppPhoneList = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientWhatsAppProveedorFallo, constvars.ErrDevWhatsAppPhoneListFailed)
	}
	ErrWhatsAppPublish = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevWhatsAppPublishFailed)
	}
	ErrMinioUpload = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevMinioUpload)
	}
	ErrImageValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientImagenInvalida, constvars.ErrDevValidationFailed)
	}
	ErrMetodoPagoNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientMetodoPagoNoEncontrado, constvars.ErrDevMongoFindDocument)
	}
	ErrHorarioNotFound = func() *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientHorarioNoEncontrado, constvars.ErrDevMongoFindDocument)
	}
	ErrBackendRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApp, constvars.ErrDevBackendRequest)
	}
)
