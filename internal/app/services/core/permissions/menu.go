package permissions

import (
	"citabot-service/internal/app/models"
	"sort"
)

// MenuNode is one rendered navigation entry with its nested children. The
// flat modulo_padre_id list becomes an explicit two-level tree exactly once,
// at profile-load time.
type MenuNode struct {
	models.MenuModulo
	Hijos []MenuNode `json:"hijos,omitempty"`
}

// BuildMenuTree nests children under their parent by modulo_padre_id and
// orders every level by orden. A child whose parent is absent from the input
// (filtered out or missing) is promoted to top level rather than dropped.
func BuildMenuTree(modulos []models.MenuModulo) []MenuNode {
	if len(modulos) == 0 {
		return []MenuNode{}
	}

	present := make(map[int]bool, len(modulos))
	for _, m := range modulos {
		present[m.ModuloID] = true
	}

	hijosPor := make(map[int][]models.MenuModulo)
	raices := make([]models.MenuModulo, 0, len(modulos))
	for _, m := range modulos {
		if m.ModuloPadreID != nil && present[*m.ModuloPadreID] {
			hijosPor[*m.ModuloPadreID] = append(hijosPor[*m.ModuloPadreID], m)
			continue
		}
		raices = append(raices, m)
	}

	sortModulos(raices)
	tree := make([]MenuNode, 0, len(raices))
	for _, raiz := range raices {
		hijos := hijosPor[raiz.ModuloID]
		sortModulos(hijos)
		node := MenuNode{MenuModulo: raiz}
		for _, h := range hijos {
			node.Hijos = append(node.Hijos, MenuNode{MenuModulo: h})
		}
		tree = append(tree, node)
	}
	return tree
}

func sortModulos(modulos []models.MenuModulo) {
	sort.SliceStable(modulos, func(i, j int) bool {
		return modulos[i].Orden < modulos[j].Orden
	})
}
