package entity

// Resource identifica un tipo de registro sujeto a permisos de escritura.
type Resource string

const (
	ResourceProduct   Resource = "product"
	ResourceWarehouse Resource = "warehouse"
)

// Capabilities indica qué recursos puede modificar un rol.
type Capabilities struct {
	ProductWrite   bool
	WarehouseWrite bool
}

var capabilityTable = map[Role]Capabilities{
	RoleAdmin:      {ProductWrite: true, WarehouseWrite: true},
	RoleProducts:   {ProductWrite: true},
	RoleWarehouses: {WarehouseWrite: true},
}

// CapabilitiesOf devuelve la fila de la tabla de permisos para el rol (vacía si no existe).
func CapabilitiesOf(r Role) Capabilities {
	return capabilityTable[r]
}

// CanWrite informa si el rol puede crear, editar o eliminar el recurso.
func (c Capabilities) CanWrite(res Resource) bool {
	switch res {
	case ResourceProduct:
		return c.ProductWrite
	case ResourceWarehouse:
		return c.WarehouseWrite
	default:
		return false
	}
}
