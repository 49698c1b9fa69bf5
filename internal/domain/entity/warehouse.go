package entity

// Warehouse representa una bodega: una ubicación de almacenamiento sin
// relación adicional obligatoria.
type Warehouse struct {
	Location
}

// NewWarehouse construye una bodega vacía.
func NewWarehouse(id, name, address string, capacity int) *Warehouse {
	return &Warehouse{Location: Location{
		ID:       id,
		Name:     name,
		Address:  address,
		Capacity: capacity,
		Items:    map[string]*Item{},
	}}
}
