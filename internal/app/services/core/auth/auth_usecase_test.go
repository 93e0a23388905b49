package auth

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUsuarioRepository struct {
	usuarios map[string]*models.Usuario
}

func (f *fakeUsuarioRepository) CreateUsuario(ctx context.Context, usuario *models.Usuario) (string, error) {
	return usuario.ID.Hex(), nil
}

func (f *fakeUsuarioRepository) FindByID(ctx context.Context, usuarioID string) (*models.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID.Hex() == usuarioID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return f.usuarios[email], nil
}

func (f *fakeUsuarioRepository) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	return f.usuarios[username], nil
}

func (f *fakeUsuarioRepository) FindByEmailOrUsername(ctx context.Context, identifier string) (*models.Usuario, error) {
	return f.usuarios[identifier], nil
}

func (f *fakeUsuarioRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Usuario, int, error) {
	return nil, 0, nil
}

func (f *fakeUsuarioRepository) UpdateUsuario(ctx context.Context, usuario *models.Usuario) error {
	return nil
}

type fakeRolRepository struct {
	roles map[string]*models.Rol
}

func (f *fakeRolRepository) FindByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	return f.roles[nombre], nil
}

func (f *fakeRolRepository) FindByNombres(ctx context.Context, nombres []string) ([]models.Rol, error) {
	var out []models.Rol
	for _, n := range nombres {
		if rol, ok := f.roles[n]; ok {
			out = append(out, *rol)
		}
	}
	return out, nil
}

func (f *fakeRolRepository) UpsertRol(ctx context.Context, rol *models.Rol) error { return nil }

func (f *fakeRolRepository) FindAll(ctx context.Context) ([]models.Rol, error) { return nil, nil }

type fakeConsultorioRepository struct {
	consultorios []models.Consultorio
}

func (f *fakeConsultorioRepository) CreateConsultorio(ctx context.Context, c *models.Consultorio) (string, error) {
	return c.ID.Hex(), nil
}

func (f *fakeConsultorioRepository) FindByID(ctx context.Context, id string) (*models.Consultorio, error) {
	for i := range f.consultorios {
		if f.consultorios[i].ID.Hex() == id {
			return &f.consultorios[i], nil
		}
	}
	return nil, nil
}

func (f *fakeConsultorioRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Consultorio, error) {
	var out []models.Consultorio
	for _, id := range ids {
		for i := range f.consultorios {
			if f.consultorios[i].ID.Hex() == id {
				out = append(out, f.consultorios[i])
			}
		}
	}
	return out, nil
}

func (f *fakeConsultorioRepository) FindAll(ctx context.Context) ([]models.Consultorio, error) {
	return f.consultorios, nil
}

func (f *fakeConsultorioRepository) UpdateConsultorio(ctx context.Context, c *models.Consultorio) error {
	return nil
}

func (f *fakeConsultorioRepository) DeleteConsultorio(ctx context.Context, id string) error {
	return nil
}

type fakeMenuRepository struct {
	modulos []models.MenuModulo
}

func (f *fakeMenuRepository) FindAllModulos(ctx context.Context) ([]models.MenuModulo, error) {
	return f.modulos, nil
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionStore) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (f *fakeSessionStore) Delete(ctx context.Context, key string) error { return nil }

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 1},
		JWT: config.JWT{Secret: "test-secret"},
	}
}

func newTestAuthUsecase(t *testing.T) (*authUsecase, *fakeUsuarioRepository, *fakeRolRepository, *fakeConsultorioRepository, *fakeSessionStore) {
	t.Helper()
	usuarios := &fakeUsuarioRepository{usuarios: make(map[string]*models.Usuario)}
	roles := &fakeRolRepository{roles: make(map[string]*models.Rol)}
	consultorios := &fakeConsultorioRepository{}
	sessions := newFakeSessionStore()
	uc := &authUsecase{
		UsuarioRepository:     usuarios,
		RolRepository:         roles,
		ConsultorioRepository: consultorios,
		MenuRepository:        &fakeMenuRepository{},
		RedisRepository:       sessions,
		InternalConfig:        testInternalConfig(),
		Log:                   zap.NewNop(),
	}
	return uc, usuarios, roles, consultorios, sessions
}

func seedUsuario(t *testing.T, repo *fakeUsuarioRepository, username, password string, mutate func(*models.Usuario)) *models.Usuario {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &models.Usuario{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    username + "@clinica.test",
		Nombre:   "Ana",
		Apellido: "Gomez",
		Password: hash,
		Activo:   true,
	}
	if mutate != nil {
		mutate(u)
	}
	repo.usuarios[u.Username] = u
	repo.usuarios[u.Email] = u
	return u
}

func loginRequest(identifier, secret string) *requests.Login {
	return &requests.Login{Identifier: identifier, Secret: secret}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc, usuarios, _, _, _ := newTestAuthUsecase(t)
	seedUsuario(t, usuarios, "ana", "Secreta#1", nil)

	t.Run("unknown identifier", func(t *testing.T) {
		_, _, err := uc.Login(context.Background(), loginRequest("nadie", "Secreta#1"))
		requireStatus(t, err, 401)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Login(context.Background(), loginRequest("ana", "otra"))
		requireStatus(t, err, 401)
	})

	t.Run("inactive user", func(t *testing.T) {
		seedUsuario(t, usuarios, "baja", "Secreta#1", func(u *models.Usuario) { u.Activo = false })
		_, _, err := uc.Login(context.Background(), loginRequest("baja", "Secreta#1"))
		requireStatus(t, err, 401)
	})
}

func TestLoginBuildsProfileFromGlobalRole(t *testing.T) {
	uc, usuarios, roles, _, sessions := newTestAuthUsecase(t)
	roles.roles["ADMIN"] = &models.Rol{Nombre: "ADMIN", Permisos: []string{"CITAS:READ", "CITAS:UPDATE"}}
	seedUsuario(t, usuarios, "ana", "Secreta#1", func(u *models.Usuario) { u.RolGlobal = "ADMIN" })

	session, token, err := uc.Login(context.Background(), loginRequest("ana", "Secreta#1"))
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, token)

	perfil := session.Perfil
	require.NotNil(t, perfil)
	require.NotNil(t, perfil.RolGlobal)
	assert.Equal(t, "ADMIN", perfil.RolGlobal.Nombre)
	assert.Equal(t, "ADMIN", perfil.RolActivo)
	assert.Equal(t, []string{"CITAS:READ", "CITAS:UPDATE"}, perfil.PermisosLista)
	assert.False(t, perfil.EsSuperadmin)

	stored, err := sessions.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.UsuarioID, stored.UsuarioID, "session must be persisted under its ID")
}

func TestLoginMergesConsultorioRolePermissions(t *testing.T) {
	uc, usuarios, roles, consultorios, _ := newTestAuthUsecase(t)
	c1 := models.Consultorio{ID: primitive.NewObjectID(), Nombre: "Centro", Activo: true}
	c2 := models.Consultorio{ID: primitive.NewObjectID(), Nombre: "Norte", Activo: true}
	consultorios.consultorios = []models.Consultorio{c1, c2}
	roles.roles["RECEPCION"] = &models.Rol{Nombre: "RECEPCION", Permisos: []string{"CITAS:READ", "CITAS:CREATE"}}
	roles.roles["MEDICO"] = &models.Rol{Nombre: "MEDICO", Permisos: []string{"CITAS:READ", "HORARIOS:UPDATE"}}
	seedUsuario(t, usuarios, "ana", "Secreta#1", func(u *models.Usuario) {
		u.RolesConsultorio = []models.RolConsultorio{
			{ConsultorioID: c1.ID.Hex(), RolNombre: "RECEPCION"},
			{ConsultorioID: c2.ID.Hex(), RolNombre: "MEDICO"},
		}
		u.ConsultorioPrincipal = c2.ID.Hex()
	})

	session, _, err := uc.Login(context.Background(), loginRequest("ana", "Secreta#1"))
	require.NoError(t, err)

	perfil := session.Perfil
	assert.Nil(t, perfil.RolGlobal)
	assert.ElementsMatch(t,
		[]string{"CITAS:READ", "CITAS:CREATE", "HORARIOS:UPDATE"},
		perfil.PermisosLista,
		"duplicate permissions across roles collapse to one",
	)
	assert.Len(t, perfil.ConsultoriosUsuario, 2)
	assert.Equal(t, "MEDICO", perfil.RolActivo, "active role follows the consultorio in scope")
}

func TestSuperadminGetsAllConsultorios(t *testing.T) {
	uc, usuarios, _, consultorios, _ := newTestAuthUsecase(t)
	consultorios.consultorios = []models.Consultorio{
		{ID: primitive.NewObjectID(), Nombre: "Centro"},
		{ID: primitive.NewObjectID(), Nombre: "Norte"},
	}
	seedUsuario(t, usuarios, "root", "Secreta#1", func(u *models.Usuario) { u.Superadmin = true })

	session, _, err := uc.Login(context.Background(), loginRequest("root", "Secreta#1"))
	require.NoError(t, err)
	assert.True(t, session.Perfil.EsSuperadmin)
	assert.Len(t, session.Perfil.TodosConsultorios, 2)
}

func TestMeUnknownSession(t *testing.T) {
	uc, _, _, _, _ := newTestAuthUsecase(t)
	_, err := uc.Me(context.Background(), "no-such-session")
	requireStatus(t, err, 401)
}

func TestRefreshRotatesSessionAndRebuildsProfile(t *testing.T) {
	uc, usuarios, roles, _, sessions := newTestAuthUsecase(t)
	roles.roles["ADMIN"] = &models.Rol{Nombre: "ADMIN", Permisos: []string{"CITAS:READ"}}
	usuario := seedUsuario(t, usuarios, "ana", "Secreta#1", func(u *models.Usuario) { u.RolGlobal = "ADMIN" })

	session, _, err := uc.Login(context.Background(), loginRequest("ana", "Secreta#1"))
	require.NoError(t, err)

	// Role gains a permission after login; refresh must pick it up.
	roles.roles["ADMIN"].Permisos = append(roles.roles["ADMIN"].Permisos, "CITAS:DELETE")

	renewed, token, err := uc.Refresh(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, session.SessionID, renewed.SessionID, "refresh issues a new session ID")
	assert.Equal(t, usuario.ID.Hex(), renewed.UsuarioID)
	assert.Contains(t, renewed.Perfil.PermisosLista, "CITAS:DELETE")

	old, err := sessions.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Nil(t, old, "previous session must be dropped")
}

func TestRefreshUnknownSession(t *testing.T) {
	uc, _, _, _, _ := newTestAuthUsecase(t)
	_, _, err := uc.Refresh(context.Background(), "gone")
	requireStatus(t, err, 401)
}

func TestLogoutDeletesSession(t *testing.T) {
	uc, usuarios, _, _, sessions := newTestAuthUsecase(t)
	seedUsuario(t, usuarios, "ana", "Secreta#1", nil)

	session, _, err := uc.Login(context.Background(), loginRequest("ana", "Secreta#1"))
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), session.SessionID))
	stored, err := sessions.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
