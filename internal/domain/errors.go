package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada sentinel corresponde a una categoría de la taxonomía de fallos del motor.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrCapacityExceeded     = errors.New("capacidad disponible insuficiente en el destino")
	ErrInsufficientQuantity = errors.New("cantidad insuficiente en el origen")
	ErrAssociationViolation = errors.New("la sala de exhibición no está asociada a la bodega")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrConflict             = errors.New("conflicto con el estado actual")
)

// ErrorCategory clasifica un fallo de operación de forma estructurada.
// El scorer lee esta categoría desde el log de operaciones en lugar de
// hacer pattern-matching sobre el texto del mensaje de error.
type ErrorCategory string

const (
	CategoryNone                 ErrorCategory = ""
	CategoryNotFound             ErrorCategory = "not_found"
	CategoryCapacityExceeded     ErrorCategory = "capacity_exceeded"
	CategoryInsufficientQuantity ErrorCategory = "insufficient_quantity"
	CategoryAssociationViolation ErrorCategory = "association_violation"
	CategoryInvalidInput         ErrorCategory = "invalid_input"
	CategoryConflict             ErrorCategory = "conflict"
)

// Categorize mapea un error (posiblemente envuelto con %w) a su categoría.
func Categorize(err error) ErrorCategory {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrNotFound):
		return CategoryNotFound
	case errors.Is(err, ErrCapacityExceeded):
		return CategoryCapacityExceeded
	case errors.Is(err, ErrInsufficientQuantity):
		return CategoryInsufficientQuantity
	case errors.Is(err, ErrAssociationViolation):
		return CategoryAssociationViolation
	case errors.Is(err, ErrConflict):
		return CategoryConflict
	default:
		return CategoryInvalidInput
	}
}
