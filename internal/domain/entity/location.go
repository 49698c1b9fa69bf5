package entity

import "github.com/shopspring/decimal"

// Location es la base compartida por Warehouse y Showroom: un contenedor de
// items con capacidad finita. Los derivados CurrentQuantity y
// AvailableCapacity cumplen en todo momento:
//
//	CurrentQuantity + AvailableCapacity == Capacity
//
// siempre que la capacidad no se exceda (el motor nunca la excede).
type Location struct {
	ID       string
	Name     string
	Address  string
	Capacity int
	Items    map[string]*Item // item_id -> Item; nunca contiene cantidades 0
}

// CurrentQuantity devuelve la cantidad total de items almacenados.
func (l *Location) CurrentQuantity() int {
	total := 0
	for _, item := range l.Items {
		total += item.Quantity
	}
	return total
}

// AvailableCapacity devuelve la capacidad restante (acotada en 0).
func (l *Location) AvailableCapacity() int {
	if avail := l.Capacity - l.CurrentQuantity(); avail > 0 {
		return avail
	}
	return 0
}

// UtilizationRate devuelve la tasa de ocupación (0.0 a 1.0).
func (l *Location) UtilizationRate() float64 {
	if l.Capacity <= 0 {
		return 0
	}
	return float64(l.CurrentQuantity()) / float64(l.Capacity)
}

// TotalValue devuelve el valor monetario total de los items almacenados.
func (l *Location) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		total = total.Add(item.Value())
	}
	return total
}

// QuantityOf devuelve la cantidad almacenada de un item (0 si no existe).
func (l *Location) QuantityOf(itemID string) int {
	if item, ok := l.Items[itemID]; ok {
		return item.Quantity
	}
	return 0
}

// Deposit agrega cantidad de un item, creándolo a partir de la plantilla si
// no existe (se preservan nombre, precio y categoría). El llamador (el motor)
// ya validó la capacidad disponible.
func (l *Location) Deposit(template *Item, quantity int) {
	if existing, ok := l.Items[template.ID]; ok {
		existing.Quantity += quantity
		return
	}
	item := template.Clone()
	item.Quantity = quantity
	l.Items[item.ID] = item
}

// Withdraw descuenta cantidad de un item y lo elimina al llegar a 0.
// Devuelve una copia del item como plantilla para el destino. El llamador
// ya validó existencia y cantidad suficiente.
func (l *Location) Withdraw(itemID string, quantity int) *Item {
	item := l.Items[itemID]
	template := item.Clone()
	item.Quantity -= quantity
	if item.Quantity == 0 {
		delete(l.Items, itemID)
	}
	return template
}
