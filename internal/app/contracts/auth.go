package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.Session, string, error)
	Me(ctx context.Context, sessionID string) (*models.UserProfile, error)
	Refresh(ctx context.Context, sessionID string) (*models.Session, string, error)
	Logout(ctx context.Context, sessionID string) error
}

type UsuarioRepository interface {
	CreateUsuario(ctx context.Context, usuario *models.Usuario) (string, error)
	FindByID(ctx context.Context, usuarioID string) (*models.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*models.Usuario, error)
	FindByEmailOrUsername(ctx context.Context, identifier string) (*models.Usuario, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Usuario, int, error)
	UpdateUsuario(ctx context.Context, usuario *models.Usuario) error
}

type RolRepository interface {
	FindByNombre(ctx context.Context, nombre string) (*models.Rol, error)
	FindByNombres(ctx context.Context, nombres []string) ([]models.Rol, error)
	UpsertRol(ctx context.Context, rol *models.Rol) error
	FindAll(ctx context.Context) ([]models.Rol, error)
}
