package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo de inventario almacenado en una ubicación.
// Quantity solo lo muta el motor; un item con cantidad 0 se elimina de la
// ubicación, nunca se conserva.
type Item struct {
	ID         string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal // precio unitario (dinero siempre en decimal)
	Category   string
	ExpiryDate *time.Time
}

// Value devuelve el valor monetario del item (cantidad * precio unitario).
func (i *Item) Value() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone devuelve una copia independiente del item.
func (i *Item) Clone() *Item {
	c := *i
	if i.ExpiryDate != nil {
		exp := *i.ExpiryDate
		c.ExpiryDate = &exp
	}
	return &c
}
