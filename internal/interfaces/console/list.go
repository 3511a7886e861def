package console

import (
	"strings"

	"github.com/jhoicas/inventario-unison/internal/application/dto"
)

type labeled struct {
	labelID string
	value   string
}

// filterLabels devuelve "Campo: valor" por cada criterio no vacío.
func filterLabels(a *App, fields []labeled) []string {
	var out []string
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" {
			continue
		}
		out = append(out, a.msg.T(f.labelID)+": "+v)
	}
	return out
}

// describeResult informa el resultado de una búsqueda. Una búsqueda con filtros sin
// coincidencias se distingue de una tabla vacía.
func describeResult(a *App, meta dto.ListMeta, filters []string) {
	switch {
	case meta.NoResults():
		a.say("list_no_results")
	case meta.Filtered:
		a.sayf("list_found", map[string]any{"Count": meta.Total})
	case meta.Total == 0:
		a.say("list_empty")
	}
	if meta.Filtered && len(filters) > 0 {
		a.sayf("list_filters", map[string]any{"Filters": strings.Join(filters, ", ")})
	}
}
