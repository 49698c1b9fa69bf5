package entity

// Showroom representa una sala de exhibición asociada a exactamente una
// bodega; solo puede recibir items movidos desde su bodega asociada.
type Showroom struct {
	Location
	AssociatedWarehouseID string
}

// NewShowroom construye una sala de exhibición vacía asociada a una bodega.
func NewShowroom(id, name, address, warehouseID string, capacity int) *Showroom {
	return &Showroom{
		Location: Location{
			ID:       id,
			Name:     name,
			Address:  address,
			Capacity: capacity,
			Items:    map[string]*Item{},
		},
		AssociatedWarehouseID: warehouseID,
	}
}
