package permissions

import (
	"testing"

	"citabot-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMenuTreeGroupsChildren(t *testing.T) {
	padre := 1
	tree := BuildMenuTree([]models.MenuModulo{
		{ModuloID: 1, Nombre: "Citas", Orden: 1},
		{ModuloID: 2, Nombre: "Calendario", Orden: 1, ModuloPadreID: &padre},
	})

	require.Len(t, tree, 1)
	assert.Equal(t, "Citas", tree[0].Nombre)
	require.Len(t, tree[0].Hijos, 1)
	assert.Equal(t, "Calendario", tree[0].Hijos[0].Nombre)
}

func TestBuildMenuTreeOrdering(t *testing.T) {
	padre := 10
	tree := BuildMenuTree([]models.MenuModulo{
		{ModuloID: 10, Nombre: "Ajustes", Orden: 5},
		{ModuloID: 11, Nombre: "Pagos", Orden: 3, ModuloPadreID: &padre},
		{ModuloID: 12, Nombre: "Horarios", Orden: 1, ModuloPadreID: &padre},
		{ModuloID: 20, Nombre: "Citas", Orden: 1},
	})

	require.Len(t, tree, 2)
	assert.Equal(t, "Citas", tree[0].Nombre)
	assert.Equal(t, "Ajustes", tree[1].Nombre)
	require.Len(t, tree[1].Hijos, 2)
	assert.Equal(t, "Horarios", tree[1].Hijos[0].Nombre)
	assert.Equal(t, "Pagos", tree[1].Hijos[1].Nombre)
}

func TestBuildMenuTreeOrphanPromotedToTopLevel(t *testing.T) {
	ausente := 99
	tree := BuildMenuTree([]models.MenuModulo{
		{ModuloID: 1, Nombre: "Citas", Orden: 1},
		{ModuloID: 2, Nombre: "Reportes", Orden: 2, ModuloPadreID: &ausente},
	})

	require.Len(t, tree, 2, "a child without a visible parent is not dropped")
	assert.Equal(t, "Reportes", tree[1].Nombre)
	assert.Empty(t, tree[1].Hijos)
}

func TestBuildMenuTreeEmptyInput(t *testing.T) {
	assert.Equal(t, []MenuNode{}, BuildMenuTree(nil))
}
