package sessions

import (
	"context"
	"path/filepath"
	"testing"

	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGateway struct {
	loginFn  func(ctx context.Context, identifier, secret string) (*models.UserProfile, error)
	meFn     func(ctx context.Context) (*models.UserProfile, error)
	logoutFn func(ctx context.Context) error

	meCalls int
}

func (g *fakeGateway) Login(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
	return g.loginFn(ctx, identifier, secret)
}

func (g *fakeGateway) Me(ctx context.Context) (*models.UserProfile, error) {
	g.meCalls++
	return g.meFn(ctx)
}

func (g *fakeGateway) Logout(ctx context.Context) error {
	if g.logoutFn == nil {
		return nil
	}
	return g.logoutFn(ctx)
}

func perfilDePrueba() *models.UserProfile {
	return &models.UserProfile{
		Usuario:       models.PerfilUsuario{Username: "dra.gomez", Email: "dra.gomez@example.com"},
		PermisosLista: []string{"CITAS:READ"},
	}
}

func assertInvariant(t *testing.T, s *Store) {
	t.Helper()
	state := s.State()
	assert.Equal(t, state.User != nil, state.IsAuthenticated,
		"isAuthenticated must always equal (user != nil)")
}

func TestLoginSuccess(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	user, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)
	require.NotNil(t, user)

	state := store.State()
	assert.True(t, state.IsAuthenticated)
	assert.Empty(t, state.Err)
	assert.False(t, state.IsLoading)
	assertInvariant(t, store)
}

func TestLoginFailureClearsPreviousSession(t *testing.T) {
	calls := 0
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			calls++
			if calls == 1 {
				return perfilDePrueba(), nil
			}
			return nil, exceptions.ErrInvalidCredentials()
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	_, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)
	require.True(t, store.State().IsAuthenticated)

	_, err = store.Login(context.Background(), "dra.gomez", "mala")
	require.Error(t, err)

	state := store.State()
	assert.Nil(t, state.User, "a failed login must never leave a stale session")
	assert.False(t, state.IsAuthenticated)
	assert.Equal(t, constvars.ErrClientCredencialesInvalidas, state.Err)
	assertInvariant(t, store)
}

func TestLoginFailureGenericFallbackMessage(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return nil, context.DeadlineExceeded
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	_, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.Error(t, err)
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApp, store.State().Err)
}

func TestLogoutAlwaysClearsState(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
		logoutFn: func(ctx context.Context) error {
			return exceptions.ErrBackendRequest(context.DeadlineExceeded)
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	_, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)

	store.Logout(context.Background())

	state := store.State()
	assert.Nil(t, state.User, "logout is unconditionally effective on the client")
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Err)
	assertInvariant(t, store)
}

func TestCheckAuthFailureIsSilent(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return nil, exceptions.ErrInvalidCredentials()
		},
		meFn: func(ctx context.Context) (*models.UserProfile, error) {
			return nil, exceptions.ErrInvalidSession()
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	// Seed an error so we can see checkAuth leaving it untouched.
	_, _ = store.Login(context.Background(), "dra.gomez", "mala")
	previo := store.State().Err
	require.NotEmpty(t, previo)

	ok := store.CheckAuth(context.Background())
	assert.False(t, ok)

	state := store.State()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.Equal(t, previo, state.Err, "checkAuth failures never touch the error field")
	assertInvariant(t, store)
}

func TestCheckAuthSuccess(t *testing.T) {
	gateway := &fakeGateway{
		meFn: func(ctx context.Context) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	assert.True(t, store.CheckAuth(context.Background()))
	assert.True(t, store.State().IsAuthenticated)
	assertInvariant(t, store)
}

func TestEnsureCheckedFiresOnce(t *testing.T) {
	gateway := &fakeGateway{
		meFn: func(ctx context.Context) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	assert.True(t, store.EnsureChecked(context.Background()))
	assert.True(t, store.EnsureChecked(context.Background()))
	assert.True(t, store.EnsureChecked(context.Background()))
	assert.Equal(t, 1, gateway.meCalls, "the bootstrap check must run exactly once")
}

func TestEvaluatorLifecycle(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())

	assert.Nil(t, store.Evaluator(), "no evaluator while logged out")

	_, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)

	eval := store.Evaluator()
	require.NotNil(t, eval)
	assert.True(t, eval.CanRead("CITAS"))
	assert.Same(t, eval, store.Evaluator(), "memoized until the profile changes")

	_, err = store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)
	assert.NotSame(t, eval, store.Evaluator(), "a new profile reference invalidates the bundle")

	store.Logout(context.Background())
	assert.Nil(t, store.Evaluator(), "stale evaluators must not survive logout")
}

func TestPersistedSubsetSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.json")
	repo := NewStateFileRepository(path)

	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
	}
	store := NewSessionStore(gateway, repo, zap.NewNop())
	_, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)

	reabierto := NewSessionStore(&fakeGateway{}, repo, zap.NewNop())
	state := reabierto.State()
	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "dra.gomez", state.User.Usuario.Username)
	assert.False(t, state.IsLoading, "isLoading is never persisted")
	assert.Empty(t, state.Err, "err is never persisted")
}

func TestLogoutClearsPersistedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estado.json")
	repo := NewStateFileRepository(path)

	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return perfilDePrueba(), nil
		},
	}
	store := NewSessionStore(gateway, repo, zap.NewNop())
	_, err := store.Login(context.Background(), "dra.gomez", "Secreta#1")
	require.NoError(t, err)

	store.Logout(context.Background())

	reabierto := NewSessionStore(&fakeGateway{}, repo, zap.NewNop())
	assert.False(t, reabierto.State().IsAuthenticated)
	assert.Nil(t, reabierto.State().User)
}

func TestReset(t *testing.T) {
	gateway := &fakeGateway{
		loginFn: func(ctx context.Context, identifier, secret string) (*models.UserProfile, error) {
			return nil, exceptions.ErrInvalidCredentials()
		},
	}
	store := NewSessionStore(gateway, nil, zap.NewNop())
	_, _ = store.Login(context.Background(), "x", "y")
	require.NotEmpty(t, store.State().Err)

	store.Reset()
	state := store.State()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Err)
}
