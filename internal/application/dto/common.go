package dto

// ListMeta metadatos de un listado: Filtered distingue "sin resultados" de una lista vacía sin filtros.
type ListMeta struct {
	Total    int  `json:"total"`
	Filtered bool `json:"filtered"`
}

// NoResults informa si una búsqueda con filtros no encontró nada.
func (m ListMeta) NoResults() bool {
	return m.Filtered && m.Total == 0
}
