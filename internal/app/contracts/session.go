package contracts

import (
	"citabot-service/internal/app/models"
	"context"
)

// AuthGateway is the admin client's view of the backend auth endpoints. The
// 401 refresh-and-retry policy lives behind this interface, never in its
// callers.
type AuthGateway interface {
	Login(ctx context.Context, identifier, secret string) (*models.UserProfile, error)
	Me(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
}

// SessionStateRepository persists the {user, isAuthenticated} subset of the
// client session state across process restarts.
type SessionStateRepository interface {
	Load() (*models.UserProfile, bool, error)
	Save(user *models.UserProfile, isAuthenticated bool) error
	Clear() error
}
