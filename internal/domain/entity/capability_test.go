package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-unison/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, entity.ParseRole("ADMIN"))
	assert.Equal(t, entity.RoleProducts, entity.ParseRole("PRODUCTOS"))
	assert.Equal(t, entity.RoleWarehouses, entity.ParseRole("ALMACENES"))
	assert.Equal(t, entity.RoleNone, entity.ParseRole("admin"), "distingue mayúsculas")
	assert.Equal(t, entity.RoleNone, entity.ParseRole(""))
	assert.Equal(t, "SIN ROL", entity.RoleNone.String())
}

func TestCapabilities_Tabla(t *testing.T) {
	cases := []struct {
		role      entity.Role
		product   bool
		warehouse bool
	}{
		{entity.RoleAdmin, true, true},
		{entity.RoleProducts, true, false},
		{entity.RoleWarehouses, false, true},
		{entity.RoleNone, false, false},
		{entity.Role("OTRO"), false, false},
	}
	for _, c := range cases {
		caps := entity.CapabilitiesOf(c.role)
		assert.Equal(t, c.product, caps.CanWrite(entity.ResourceProduct), c.role)
		assert.Equal(t, c.warehouse, caps.CanWrite(entity.ResourceWarehouse), c.role)
		assert.False(t, caps.CanWrite(entity.Resource("usuario")), c.role)
	}
}
