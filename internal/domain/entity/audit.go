package entity

import "time"

// AuditStamp es el par (fecha, usuario) que acompaña a cada alta o modificación.
type AuditStamp struct {
	At time.Time
	By string
}
