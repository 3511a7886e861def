package usecase

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-unison/internal/domain"
)

// optionalText recorta el texto; en blanco se guarda como NULL, nunca como "".
func optionalText(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}

func optionalDecimal(field, s string) (decimal.NullDecimal, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}, domain.NewValidationError(field, domain.ReasonNotNumeric)
	}
	return decimal.NewNullDecimal(d), nil
}

func optionalInt(field, s string) (*int64, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(field, domain.ReasonNotInteger)
	}
	return &n, nil
}

// bound interpreta un límite numérico de filtro; texto no numérico es error de validación.
func bound(field, s string) (*decimal.Decimal, error) {
	d, err := optionalDecimal(field, s)
	if err != nil || !d.Valid {
		return nil, err
	}
	return &d.Decimal, nil
}
