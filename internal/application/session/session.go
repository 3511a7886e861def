// Package session modela la identidad del usuario que inició sesión.
//
// Una Session se crea al validar credenciales y se pasa explícitamente a cada
// caso de uso que escribe; no existe estado global de usuario actual.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-unison/internal/domain"
	"github.com/jhoicas/inventario-unison/internal/domain/entity"
)

// Session identidad vigente desde el login hasta el fin del proceso.
type Session struct {
	ID       uuid.UUID
	UserName string
	Role     entity.Role
	Since    time.Time
}

// New crea una sesión para el usuario y rol dados.
func New(userName string, role entity.Role) *Session {
	return &Session{
		ID:       uuid.New(),
		UserName: userName,
		Role:     role,
		Since:    time.Now(),
	}
}

// Capabilities devuelve los permisos del rol de la sesión.
func (s *Session) Capabilities() entity.Capabilities {
	if s == nil {
		return entity.Capabilities{}
	}
	return entity.CapabilitiesOf(s.Role)
}

// CanWrite informa si la sesión puede modificar el recurso.
func (s *Session) CanWrite(res entity.Resource) bool {
	return s.Capabilities().CanWrite(res)
}

// Authorize es el único punto de control de escritura. Devuelve un error que
// envuelve domain.ErrForbidden cuando el rol no tiene el permiso.
func (s *Session) Authorize(res entity.Resource) error {
	if s == nil {
		return fmt.Errorf("sin sesión: %w", domain.ErrForbidden)
	}
	if !s.CanWrite(res) {
		return fmt.Errorf("rol %s sin permiso de escritura sobre %s: %w", s.Role, res, domain.ErrForbidden)
	}
	return nil
}

// Stamp devuelve el sello de auditoría de la sesión en el instante at.
func (s *Session) Stamp(at time.Time) entity.AuditStamp {
	return entity.AuditStamp{At: at, By: s.UserName}
}
