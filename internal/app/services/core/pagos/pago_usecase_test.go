package pagos

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memPagoRepository struct {
	metodos map[string]map[string]*models.MetodoPago
}

func newMemPagoRepository() *memPagoRepository {
	return &memPagoRepository{metodos: make(map[string]map[string]*models.MetodoPago)}
}

func (m *memPagoRepository) UpsertMetodoPago(ctx context.Context, metodo *models.MetodoPago) error {
	if m.metodos[metodo.ConsultorioID] == nil {
		m.metodos[metodo.ConsultorioID] = make(map[string]*models.MetodoPago)
	}
	copied := *metodo
	m.metodos[metodo.ConsultorioID][metodo.Tipo] = &copied
	return nil
}

func (m *memPagoRepository) FindByConsultorio(ctx context.Context, consultorioID string) ([]models.MetodoPago, error) {
	out := make([]models.MetodoPago, 0)
	for _, metodo := range m.metodos[consultorioID] {
		out = append(out, *metodo)
	}
	return out, nil
}

func (m *memPagoRepository) FindByConsultorioAndTipo(ctx context.Context, consultorioID, tipo string) (*models.MetodoPago, error) {
	metodo := m.metodos[consultorioID][tipo]
	if metodo == nil {
		return nil, nil
	}
	copied := *metodo
	return &copied, nil
}

func (m *memPagoRepository) DeleteMetodoPago(ctx context.Context, consultorioID, tipo string) error {
	delete(m.metodos[consultorioID], tipo)
	return nil
}

func TestUpsertMetodoPagoDefaultsHabilitado(t *testing.T) {
	uc := &pagoUsecase{PagoRepository: newMemPagoRepository(), Log: zap.NewNop()}

	metodo, err := uc.UpsertMetodoPago(context.Background(), "c1", &requests.UpsertMetodoPago{
		Tipo: "EFECTIVO", NombreMostrado: "Efectivo en consulta",
	})
	require.NoError(t, err)
	assert.True(t, metodo.Habilitado)
}

func TestUpsertMetodoPagoReplacesSameTipo(t *testing.T) {
	repo := newMemPagoRepository()
	uc := &pagoUsecase{PagoRepository: repo, Log: zap.NewNop()}

	deshabilitado := false
	_, err := uc.UpsertMetodoPago(context.Background(), "c1", &requests.UpsertMetodoPago{
		Tipo: "TRANSFERENCIA", NombreMostrado: "Transferencia", Cuenta: "ES91 0001",
	})
	require.NoError(t, err)

	metodo, err := uc.UpsertMetodoPago(context.Background(), "c1", &requests.UpsertMetodoPago{
		Tipo: "TRANSFERENCIA", NombreMostrado: "Transferencia bancaria", Cuenta: "ES91 0002", Habilitado: &deshabilitado,
	})
	require.NoError(t, err)
	assert.Equal(t, "ES91 0002", metodo.Cuenta)
	assert.False(t, metodo.Habilitado)

	metodos, err := uc.ListMetodosPago(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, metodos, 1)
}

func TestDeleteMetodoPagoMissingTipo(t *testing.T) {
	uc := &pagoUsecase{PagoRepository: newMemPagoRepository(), Log: zap.NewNop()}

	err := uc.DeleteMetodoPago(context.Background(), "c1", "QR")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestListMetodosPagoScopedPerConsultorio(t *testing.T) {
	repo := newMemPagoRepository()
	uc := &pagoUsecase{PagoRepository: repo, Log: zap.NewNop()}

	_, err := uc.UpsertMetodoPago(context.Background(), "c1", &requests.UpsertMetodoPago{
		Tipo: "EFECTIVO", NombreMostrado: "Efectivo",
	})
	require.NoError(t, err)

	metodos, err := uc.ListMetodosPago(context.Background(), "c2")
	require.NoError(t, err)
	assert.Empty(t, metodos)
}
