package sqlite

import (
	"strings"

	"github.com/shopspring/decimal"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereBuilder arma la conjunción de predicados de la búsqueda avanzada.
// Parte de "1=1"; cada campo poblado agrega una condición y los vacíos se omiten.
type whereBuilder struct {
	clauses []string
	args    []any
}

func newWhereBuilder() *whereBuilder {
	return &whereBuilder{clauses: []string{"1=1"}}
}

// contains agrega "col LIKE %v%". Los comodines escritos por el usuario se buscan literalmente.
func (w *whereBuilder) contains(column, value string) *whereBuilder {
	v := strings.TrimSpace(value)
	if v == "" {
		return w
	}
	w.clauses = append(w.clauses, column+` LIKE ? ESCAPE '\'`)
	w.args = append(w.args, "%"+likeEscaper.Replace(v)+"%")
	return w
}

func (w *whereBuilder) atLeast(column string, bound *decimal.Decimal) *whereBuilder {
	return w.compare(column, ">=", bound)
}

func (w *whereBuilder) atMost(column string, bound *decimal.Decimal) *whereBuilder {
	return w.compare(column, "<=", bound)
}

func (w *whereBuilder) compare(column, op string, bound *decimal.Decimal) *whereBuilder {
	if bound == nil {
		return w
	}
	w.clauses = append(w.clauses, column+" "+op+" ?")
	w.args = append(w.args, bound.InexactFloat64())
	return w
}

// build devuelve la cláusula WHERE y sus argumentos en orden.
func (w *whereBuilder) build() (string, []any) {
	return " WHERE " + strings.Join(w.clauses, " AND "), w.args
}
