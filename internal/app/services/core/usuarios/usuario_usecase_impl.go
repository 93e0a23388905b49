package usuarios

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type usuarioUsecase struct {
	UsuarioRepository contracts.UsuarioRepository
	RolRepository     contracts.RolRepository
	Log               *zap.Logger
}

var (
	usuarioUsecaseInstance contracts.UsuarioUsecase
	onceUsuarioUsecase     sync.Once
)

func NewUsuarioUsecase(
	usuarioRepository contracts.UsuarioRepository,
	rolRepository contracts.RolRepository,
	logger *zap.Logger,
) contracts.UsuarioUsecase {
	onceUsuarioUsecase.Do(func() {
		usuarioUsecaseInstance = &usuarioUsecase{
			UsuarioRepository: usuarioRepository,
			RolRepository:     rolRepository,
			Log:               logger,
		}
	})
	return usuarioUsecaseInstance
}

func (uc *usuarioUsecase) CreateUsuario(ctx context.Context, request *requests.CreateUsuario) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("usuarioUsecase.CreateUsuario called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UsuarioRepository.FindByEmailOrUsername(ctx, request.Email)
	if err != nil {
		return "", err
	}
	if existing == nil {
		existing, err = uc.UsuarioRepository.FindByEmailOrUsername(ctx, request.Username)
		if err != nil {
			return "", err
		}
	}
	if existing != nil {
		return "", exceptions.ErrUsuarioAlreadyExists()
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", exceptions.ErrHashPassword(err)
	}

	usuario := &models.Usuario{
		Username: request.Username,
		Email:    request.Email,
		Nombre:   request.Nombre,
		Apellido: request.Apellido,
		Password: hash,
		Activo:   true,
	}
	return uc.UsuarioRepository.CreateUsuario(ctx, usuario)
}

func (uc *usuarioUsecase) GetUsuario(ctx context.Context, usuarioID string) (*models.Usuario, error) {
	usuario, err := uc.UsuarioRepository.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, exceptions.ErrUsuarioNotFound()
	}
	return usuario, nil
}

func (uc *usuarioUsecase) ListUsuarios(ctx context.Context, page, pageSize int) ([]models.Usuario, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.UsuarioRepository.FindAll(ctx, page, pageSize)
}

func (uc *usuarioUsecase) UpdateUsuario(ctx context.Context, usuarioID string, request *requests.UpdateUsuario) error {
	usuario, err := uc.UsuarioRepository.FindByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return exceptions.ErrUsuarioNotFound()
	}

	if request.Nombre != "" {
		usuario.Nombre = request.Nombre
	}
	if request.Apellido != "" {
		usuario.Apellido = request.Apellido
	}
	if request.Activo != nil {
		usuario.Activo = *request.Activo
	}
	if request.ConsultorioContextoActual != "" {
		// Switching context also records it as the last active consultorio,
		// so the scope survives the context being cleared later.
		usuario.ConsultorioContextoActual = request.ConsultorioContextoActual
		usuario.UltimoConsultorioActivo = request.ConsultorioContextoActual
	}

	return uc.UsuarioRepository.UpdateUsuario(ctx, usuario)
}

// AssignRoles replaces the user's role assignment as a whole. A global role
// and per-consultorio roles cannot coexist on the same user.
func (uc *usuarioUsecase) AssignRoles(ctx context.Context, usuarioID string, request *requests.AssignRoles) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("usuarioUsecase.AssignRoles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsuarioIDKey, usuarioID),
	)

	if request.RolGlobal != "" && len(request.RolesConsultorio) > 0 {
		return exceptions.ErrGlobalAndScopedRoles()
	}

	usuario, err := uc.UsuarioRepository.FindByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return exceptions.ErrUsuarioNotFound()
	}

	if request.RolGlobal != "" {
		rol, err := uc.RolRepository.FindByNombre(ctx, request.RolGlobal)
		if err != nil {
			return err
		}
		if rol == nil {
			return exceptions.ErrRolNotFound()
		}
		usuario.RolGlobal = request.RolGlobal
		usuario.RolesConsultorio = nil
	} else {
		nombres := make([]string, 0, len(request.RolesConsultorio))
		asignaciones := make([]models.RolConsultorio, 0, len(request.RolesConsultorio))
		for _, rc := range request.RolesConsultorio {
			nombres = append(nombres, rc.RolNombre)
			asignaciones = append(asignaciones, models.RolConsultorio{
				ConsultorioID: rc.ConsultorioID,
				RolNombre:     rc.RolNombre,
			})
		}
		roles, err := uc.RolRepository.FindByNombres(ctx, nombres)
		if err != nil {
			return err
		}
		conocidos := make(map[string]bool, len(roles))
		for _, rol := range roles {
			conocidos[rol.Nombre] = true
		}
		for _, nombre := range nombres {
			if !conocidos[nombre] {
				return exceptions.ErrRolNotFound()
			}
		}
		usuario.RolGlobal = ""
		usuario.RolesConsultorio = asignaciones
	}

	return uc.UsuarioRepository.UpdateUsuario(ctx, usuario)
}

func (uc *usuarioUsecase) UpsertRol(ctx context.Context, request *requests.UpsertRol) error {
	return uc.RolRepository.UpsertRol(ctx, &models.Rol{
		Nombre:   request.Nombre,
		Permisos: request.Permisos,
	})
}

func (uc *usuarioUsecase) ListRoles(ctx context.Context) ([]models.Rol, error) {
	return uc.RolRepository.FindAll(ctx)
}
