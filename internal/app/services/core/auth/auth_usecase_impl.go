package auth

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UsuarioRepository     contracts.UsuarioRepository
	RolRepository         contracts.RolRepository
	ConsultorioRepository contracts.ConsultorioRepository
	MenuRepository        contracts.MenuRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	usuarioRepository contracts.UsuarioRepository,
	rolRepository contracts.RolRepository,
	consultorioRepository contracts.ConsultorioRepository,
	menuRepository contracts.MenuRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UsuarioRepository:     usuarioRepository,
			RolRepository:         rolRepository,
			ConsultorioRepository: consultorioRepository,
			MenuRepository:        menuRepository,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.Session, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	usuario, err := uc.UsuarioRepository.FindByEmailOrUsername(ctx, request.Identifier)
	if err != nil {
		return nil, "", err
	}
	if usuario == nil || !usuario.Activo {
		return nil, "", exceptions.ErrInvalidCredentials()
	}
	if !utils.CheckPasswordHash(request.Secret, usuario.Password) {
		return nil, "", exceptions.ErrInvalidCredentials()
	}

	perfil, err := uc.buildUserProfile(ctx, usuario)
	if err != nil {
		return nil, "", err
	}

	session, token, err := uc.createSession(ctx, usuario.ID.Hex(), perfil)
	if err != nil {
		return nil, "", err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsuarioIDKey, session.UsuarioID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, token, nil
}

func (uc *authUsecase) Me(ctx context.Context, sessionID string) (*models.UserProfile, error) {
	session, err := uc.RedisRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrInvalidSession()
	}
	return session.Perfil, nil
}

// Refresh rotates the session: the profile is rebuilt from mongo so role or
// permission changes made since login take effect, the old session is
// dropped and a new ID is issued.
func (uc *authUsecase) Refresh(ctx context.Context, sessionID string) (*models.Session, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.RedisRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if session == nil {
		return nil, "", exceptions.ErrInvalidSession()
	}

	usuario, err := uc.UsuarioRepository.FindByID(ctx, session.UsuarioID)
	if err != nil {
		return nil, "", err
	}
	if usuario == nil || !usuario.Activo {
		return nil, "", exceptions.ErrInvalidSession()
	}

	perfil, err := uc.buildUserProfile(ctx, usuario)
	if err != nil {
		return nil, "", err
	}

	newSession, token, err := uc.createSession(ctx, session.UsuarioID, perfil)
	if err != nil {
		return nil, "", err
	}

	if err := uc.RedisRepository.DeleteSession(ctx, sessionID); err != nil {
		uc.Log.Warn("authUsecase.Refresh failed to drop previous session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
	return newSession, token, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) createSession(ctx context.Context, usuarioID string, perfil *models.UserProfile) (*models.Session, string, error) {
	ttl := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UsuarioID: usuarioID,
		Perfil:    perfil,
		ExpiresAt: time.Now().Add(ttl),
	}

	if err := uc.RedisRepository.CreateSession(ctx, session, ttl); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

// buildUserProfile assembles the full profile a client session works against.
// It is rebuilt wholesale on every login and refresh, never patched.
func (uc *authUsecase) buildUserProfile(ctx context.Context, usuario *models.Usuario) (*models.UserProfile, error) {
	perfil := &models.UserProfile{
		Usuario: models.PerfilUsuario{
			Username: usuario.Username,
			Email:    usuario.Email,
			Nombre:   usuario.Nombre,
			Apellido: usuario.Apellido,
		},
		EsSuperadmin:              usuario.Superadmin,
		PermisosLista:             make([]string, 0),
		ConsultoriosUsuario:       make([]models.ConsultorioUsuario, 0),
		ConsultorioContextoActual: usuario.ConsultorioContextoActual,
		ConsultorioPrincipal:      usuario.ConsultorioPrincipal,
		UltimoConsultorioActivo:   usuario.UltimoConsultorioActivo,
	}

	if usuario.RolGlobal != "" {
		rol, err := uc.RolRepository.FindByNombre(ctx, usuario.RolGlobal)
		if err != nil {
			return nil, err
		}
		if rol != nil {
			perfil.RolGlobal = &models.RolDescriptor{Nombre: rol.Nombre}
			perfil.RolActivo = rol.Nombre
			perfil.PermisosLista = append(perfil.PermisosLista, rol.Permisos...)
		}
	} else if len(usuario.RolesConsultorio) > 0 {
		nombres := make([]string, 0, len(usuario.RolesConsultorio))
		consultorioIDs := make([]string, 0, len(usuario.RolesConsultorio))
		rolPorConsultorio := make(map[string]string, len(usuario.RolesConsultorio))
		for _, rc := range usuario.RolesConsultorio {
			nombres = append(nombres, rc.RolNombre)
			consultorioIDs = append(consultorioIDs, rc.ConsultorioID)
			rolPorConsultorio[rc.ConsultorioID] = rc.RolNombre
		}

		roles, err := uc.RolRepository.FindByNombres(ctx, nombres)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		for _, rol := range roles {
			for _, permiso := range rol.Permisos {
				if !seen[permiso] {
					seen[permiso] = true
					perfil.PermisosLista = append(perfil.PermisosLista, permiso)
				}
			}
		}

		consultorios, err := uc.ConsultorioRepository.FindByIDs(ctx, consultorioIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range consultorios {
			perfil.ConsultoriosUsuario = append(perfil.ConsultoriosUsuario, models.ConsultorioUsuario{
				ConsultorioID: c.ID.Hex(),
				Nombre:        c.Nombre,
				Direccion:     c.Direccion,
				RolNombre:     rolPorConsultorio[c.ID.Hex()],
			})
		}

		// RolActivo follows the consultorio in scope, falling back to the
		// first assignment when none resolves.
		if rol, ok := rolPorConsultorio[perfil.ConsultorioActual()]; ok {
			perfil.RolActivo = rol
		} else {
			perfil.RolActivo = usuario.RolesConsultorio[0].RolNombre
		}
	}

	if usuario.Superadmin {
		todos, err := uc.ConsultorioRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		perfil.TodosConsultorios = make([]models.ConsultorioUsuario, 0, len(todos))
		for _, c := range todos {
			perfil.TodosConsultorios = append(perfil.TodosConsultorios, models.ConsultorioUsuario{
				ConsultorioID: c.ID.Hex(),
				Nombre:        c.Nombre,
				Direccion:     c.Direccion,
			})
		}
	}

	modulos, err := uc.MenuRepository.FindAllModulos(ctx)
	if err != nil {
		return nil, err
	}
	perfil.MenuModulos = modulos

	return perfil, nil
}
