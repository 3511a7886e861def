package sqlite

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timestampLayout es el formato ISO-8601 local con microsegundos que se guarda en las columnas de auditoría.
const timestampLayout = "2006-01-02T15:04:05.000000"

var readLayouts = []string{
	"2006-01-02T15:04:05", // acepta fracción opcional al parsear
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// parseTimestamp interpreta un valor de auditoría; nil si está vacío o no se reconoce.
func parseTimestamp(s sql.NullString) *time.Time {
	if !s.Valid || strings.TrimSpace(s.String) == "" {
		return nil
	}
	for _, layout := range readLayouts {
		if t, err := time.ParseInLocation(layout, s.String, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// Las columnas numéricas se leen como texto: la base original guardaba lo que el usuario escribía.

func parseNullDecimal(s sql.NullString) decimal.NullDecimal {
	if !s.Valid {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s.String))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func parseNullInt(s sql.NullString) *int64 {
	if !s.Valid {
		return nil
	}
	v := strings.TrimSpace(s.String)
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return &n
	}
	if d, err := decimal.NewFromString(v); err == nil {
		n := d.IntPart()
		return &n
	}
	return nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullInt(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
