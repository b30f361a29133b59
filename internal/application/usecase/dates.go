package usecase

import (
	"time"

	"github.com/Shaikh-Javeriya/ClientIQ-PWA/internal/domain"
)

// Formatos de fecha aceptados en los bodies de la API, en orden de intento.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// parseDate interpreta una fecha ISO-8601 del body. Cadena vacía es inválida.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}

// parseOptionalDate como parseDate pero la cadena vacía devuelve nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
