package console

// EditTarget indica para qué se abre un formulario: CreateMode o EditMode.
type EditTarget interface {
	isEditTarget()
}

// CreateMode formulario vacío para un registro nuevo.
type CreateMode struct{}

// EditMode formulario cargado con el registro ID.
type EditMode struct {
	ID int64
}

func (CreateMode) isEditTarget() {}
func (EditMode) isEditTarget()   {}

// Clear respuesta que deja vacío un campo opcional en un formulario.
const Clear = "-"
