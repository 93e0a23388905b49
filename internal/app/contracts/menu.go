package contracts

import (
	"citabot-service/internal/app/models"
	"context"
)

type MenuRepository interface {
	FindAllModulos(ctx context.Context) ([]models.MenuModulo, error)
}
