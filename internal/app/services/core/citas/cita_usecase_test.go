package citas

import (
	"citabot-service/internal/app/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCitaRepository struct {
	citas []models.Cita
	err   error
}

func (s *stubCitaRepository) FindByConsultorioAndRange(ctx context.Context, consultorioID string, desde, hasta time.Time) ([]models.Cita, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Cita, 0)
	for _, c := range s.citas {
		if c.ConsultorioID == consultorioID && !c.Inicio.Before(desde) && c.Inicio.Before(hasta) {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestDashboardCountsPerEstado(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := &stubCitaRepository{citas: []models.Cita{
		{ConsultorioID: "c1", Estado: models.CitaEstadoPendiente, Inicio: base},
		{ConsultorioID: "c1", Estado: models.CitaEstadoConfirmada, Inicio: base.Add(time.Hour)},
		{ConsultorioID: "c1", Estado: models.CitaEstadoConfirmada, Inicio: base.Add(2 * time.Hour)},
		{ConsultorioID: "c1", Estado: models.CitaEstadoCancelada, Inicio: base.Add(3 * time.Hour)},
		{ConsultorioID: "otro", Estado: models.CitaEstadoPendiente, Inicio: base},
	}}
	uc := &citaUsecase{CitaRepository: repo, Log: zap.NewNop()}

	dashboard, err := uc.Dashboard(context.Background(), "c1", base, base.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, "c1", dashboard.ConsultorioID)
	assert.Equal(t, 4, dashboard.Total)
	assert.Equal(t, 1, dashboard.PorEstado[models.CitaEstadoPendiente])
	assert.Equal(t, 2, dashboard.PorEstado[models.CitaEstadoConfirmada])
	assert.Equal(t, 1, dashboard.PorEstado[models.CitaEstadoCancelada])
	assert.Len(t, dashboard.Citas, 4)
}

func TestDashboardEmptyWindow(t *testing.T) {
	uc := &citaUsecase{CitaRepository: &stubCitaRepository{}, Log: zap.NewNop()}

	dashboard, err := uc.Dashboard(context.Background(), "c1", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Zero(t, dashboard.Total)
	assert.Empty(t, dashboard.PorEstado)
	assert.NotNil(t, dashboard.Citas, "empty window still returns an empty slice, not null")
}
