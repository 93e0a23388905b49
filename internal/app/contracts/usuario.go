package contracts

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"context"
)

type UsuarioUsecase interface {
	CreateUsuario(ctx context.Context, request *requests.CreateUsuario) (string, error)
	GetUsuario(ctx context.Context, usuarioID string) (*models.Usuario, error)
	ListUsuarios(ctx context.Context, page, pageSize int) ([]models.Usuario, int, error)
	UpdateUsuario(ctx context.Context, usuarioID string, request *requests.UpdateUsuario) error
	AssignRoles(ctx context.Context, usuarioID string, request *requests.AssignRoles) error
	UpsertRol(ctx context.Context, request *requests.UpsertRol) error
	ListRoles(ctx context.Context) ([]models.Rol, error)
}
