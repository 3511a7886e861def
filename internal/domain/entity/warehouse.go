package entity

import "time"

// Warehouse representa un almacén. El nombre es único en la base.
type Warehouse struct {
	ID             int64
	Name           string
	LastModified   *time.Time
	LastModifiedBy string
}
