package consultorios

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memConsultorioRepository struct {
	consultorios map[string]*models.Consultorio
}

func newMemConsultorioRepository() *memConsultorioRepository {
	return &memConsultorioRepository{consultorios: make(map[string]*models.Consultorio)}
}

func (m *memConsultorioRepository) CreateConsultorio(ctx context.Context, consultorio *models.Consultorio) (string, error) {
	copied := *consultorio
	copied.ID = primitive.NewObjectID()
	m.consultorios[copied.ID.Hex()] = &copied
	return copied.ID.Hex(), nil
}

func (m *memConsultorioRepository) FindByID(ctx context.Context, consultorioID string) (*models.Consultorio, error) {
	consultorio := m.consultorios[consultorioID]
	if consultorio == nil {
		return nil, nil
	}
	copied := *consultorio
	return &copied, nil
}

func (m *memConsultorioRepository) FindByIDs(ctx context.Context, consultorioIDs []string) ([]models.Consultorio, error) {
	out := make([]models.Consultorio, 0)
	for _, id := range consultorioIDs {
		if c := m.consultorios[id]; c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memConsultorioRepository) FindAll(ctx context.Context) ([]models.Consultorio, error) {
	out := make([]models.Consultorio, 0, len(m.consultorios))
	for _, c := range m.consultorios {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memConsultorioRepository) UpdateConsultorio(ctx context.Context, consultorio *models.Consultorio) error {
	if m.consultorios[consultorio.ID.Hex()] == nil {
		return fmt.Errorf("consultorio %s not stored", consultorio.ID.Hex())
	}
	copied := *consultorio
	m.consultorios[consultorio.ID.Hex()] = &copied
	return nil
}

func (m *memConsultorioRepository) DeleteConsultorio(ctx context.Context, consultorioID string) error {
	delete(m.consultorios, consultorioID)
	return nil
}

type recordingStorage struct {
	objectName  string
	contentType string
	size        int64
}

func (s *recordingStorage) UploadObject(ctx context.Context, objectName, contentType string, size int64, reader io.Reader) (string, error) {
	s.objectName = objectName
	s.contentType = contentType
	s.size = size
	io.Copy(io.Discard, reader)
	return objectName, nil
}

func newTestConsultorioUsecase(repo *memConsultorioRepository, storage *recordingStorage) *consultorioUsecase {
	return &consultorioUsecase{
		ConsultorioRepository: repo,
		StorageService:        storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{LogoMaxUploadSizeInMB: 2},
		},
		Log: zap.NewNop(),
	}
}

func TestCreateConsultorioStartsActive(t *testing.T) {
	uc := newTestConsultorioUsecase(newMemConsultorioRepository(), &recordingStorage{})

	consultorio, err := uc.CreateConsultorio(context.Background(), &requests.CreateConsultorio{
		Nombre: "Clínica Centro", Direccion: "Av. Mayo 12",
	})
	require.NoError(t, err)
	assert.True(t, consultorio.Activo)
}

func TestGetConsultorioUnknown(t *testing.T) {
	uc := newTestConsultorioUsecase(newMemConsultorioRepository(), &recordingStorage{})

	_, err := uc.GetConsultorio(context.Background(), "missing")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestUpdateConsultorioPartialFields(t *testing.T) {
	repo := newMemConsultorioRepository()
	uc := newTestConsultorioUsecase(repo, &recordingStorage{})

	created, err := uc.CreateConsultorio(context.Background(), &requests.CreateConsultorio{
		Nombre: "Clínica Centro", Direccion: "Av. Mayo 12", Telefono: "600111222",
	})
	require.NoError(t, err)

	inactivo := false
	updated, err := uc.UpdateConsultorio(context.Background(), created.ID.Hex(), &requests.UpdateConsultorio{
		Direccion: "Av. Mayo 14", Activo: &inactivo,
	})
	require.NoError(t, err)
	assert.Equal(t, "Clínica Centro", updated.Nombre)
	assert.Equal(t, "Av. Mayo 14", updated.Direccion)
	assert.Equal(t, "600111222", updated.Telefono)
	assert.False(t, updated.Activo)
}

func TestDeleteConsultorioUnknown(t *testing.T) {
	uc := newTestConsultorioUsecase(newMemConsultorioRepository(), &recordingStorage{})

	err := uc.DeleteConsultorio(context.Background(), "missing")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestUploadLogoValidation(t *testing.T) {
	repo := newMemConsultorioRepository()
	uc := newTestConsultorioUsecase(repo, &recordingStorage{})

	created, err := uc.CreateConsultorio(context.Background(), &requests.CreateConsultorio{
		Nombre: "Clínica Centro", Direccion: "Av. Mayo 12",
	})
	require.NoError(t, err)

	cases := []struct {
		name     string
		filename string
		size     int64
	}{
		{"oversized", "logo.png", 3 * 1024 * 1024},
		{"zero size", "logo.png", 0},
		{"not an image", "logo.pdf", 1024},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UploadLogo(context.Background(), created.ID.Hex(), tc.filename, tc.size, strings.NewReader("data"))
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, 400, customErr.StatusCode)
		})
	}
}

func TestUploadLogoStoresScopedObject(t *testing.T) {
	repo := newMemConsultorioRepository()
	storage := &recordingStorage{}
	uc := newTestConsultorioUsecase(repo, storage)

	created, err := uc.CreateConsultorio(context.Background(), &requests.CreateConsultorio{
		Nombre: "Clínica Centro", Direccion: "Av. Mayo 12",
	})
	require.NoError(t, err)

	objectName, err := uc.UploadLogo(context.Background(), created.ID.Hex(), "logo.PNG", 1024, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("consultorios/%s/logo.png", created.ID.Hex()), objectName)
	assert.Equal(t, "image/png", storage.contentType)
	assert.Equal(t, int64(1024), storage.size)

	stored, err := uc.GetConsultorio(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, objectName, stored.LogoURL)
}
