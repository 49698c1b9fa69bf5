package inventory

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-crisis/internal/application/dto"
	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
)

// Identificador fijo del sistema en las proyecciones.
const systemID = "INVENTORY_SYS_001"

// InventoryStatus proyecta el estado vivo del motor como un Snapshot
// inmutable y serializable. Es una lectura pura: no muta entidades, no
// registra en el log y el snapshot no guarda referencias al estado del motor
// (todo son copias). Se recalcula completo en cada llamada.
func (e *Engine) InventoryStatus() *dto.Snapshot {
	snap := &dto.Snapshot{
		SystemID:               systemID,
		Timestamp:              time.Now(),
		TotalWarehouses:        len(e.warehouses),
		TotalShowrooms:         len(e.showrooms),
		Warehouses:             make(map[string]dto.LocationState, len(e.warehouses)),
		Showrooms:              make(map[string]dto.LocationState, len(e.showrooms)),
		ActiveShipmentRequests: map[string]dto.ShipmentRequestState{},
		WarehouseAssociations:  make(map[string]string, len(e.showrooms)),
		SystemStatus:           "operational",
	}

	totalItems := 0
	totalCapacity := 0
	totalValue := decimal.Zero

	for id, wh := range e.warehouses {
		snap.Warehouses[id] = locationState(&wh.Location, "")
		totalItems += wh.CurrentQuantity()
		totalCapacity += wh.Capacity
		totalValue = totalValue.Add(wh.TotalValue())
	}
	for id, sr := range e.showrooms {
		snap.Showrooms[id] = locationState(&sr.Location, sr.AssociatedWarehouseID)
		snap.WarehouseAssociations[id] = sr.AssociatedWarehouseID
		totalItems += sr.CurrentQuantity()
		totalCapacity += sr.Capacity
		totalValue = totalValue.Add(sr.TotalValue())
	}
	for id, req := range e.requests {
		if !req.Active() {
			continue
		}
		snap.ActiveShipmentRequests[id] = dto.ShipmentRequestState{
			RequestID:            req.RequestID,
			ItemRequests:         copyQuantities(req.ItemRequests),
			DestinationWarehouse: req.DestinationWarehouse,
			RequestedDate:        req.RequestedDate,
			Status:               req.Status,
		}
	}

	overall := 0.0
	if totalCapacity > 0 {
		overall = float64(totalItems) / float64(totalCapacity)
	}
	snap.Summary = dto.SystemSummary{
		TotalItems:             totalItems,
		TotalCapacity:          totalCapacity,
		TotalAvailableCapacity: totalCapacity - totalItems,
		OverallUtilizationRate: roundRate(overall),
		TotalValue:             totalValue,
	}
	return snap
}

func locationState(loc *entity.Location, associatedWarehouseID string) dto.LocationState {
	items := make(map[string]dto.ItemState, len(loc.Items))
	for id, item := range loc.Items {
		items[id] = itemState(item)
	}
	return dto.LocationState{
		LocationID:            loc.ID,
		Name:                  loc.Name,
		Address:               loc.Address,
		Capacity:              loc.Capacity,
		CurrentQuantity:       loc.CurrentQuantity(),
		AvailableCapacity:     loc.AvailableCapacity(),
		UtilizationRate:       roundRate(loc.UtilizationRate()),
		Items:                 items,
		AssociatedWarehouseID: associatedWarehouseID,
	}
}

func itemState(item *entity.Item) dto.ItemState {
	state := dto.ItemState{
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Category:  item.Category,
		Value:     item.Value(),
	}
	if item.ExpiryDate != nil {
		exp := *item.ExpiryDate
		state.ExpiryDate = &exp
	}
	return state
}

// roundRate redondea una tasa de utilización a 4 decimales.
func roundRate(rate float64) float64 {
	return math.Round(rate*10000) / 10000
}
