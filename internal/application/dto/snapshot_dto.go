package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemState es la proyección serializable de un item en una ubicación.
type ItemState struct {
	ItemID     string          `json:"item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Category   string          `json:"category"`
	Value      decimal.Decimal `json:"value"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
}

// LocationState es la proyección serializable de una ubicación (bodega o
// sala de exhibición). AssociatedWarehouseID solo aplica a salas.
type LocationState struct {
	LocationID            string               `json:"location_id"`
	Name                  string               `json:"name"`
	Address               string               `json:"location_address"`
	Capacity              int                  `json:"capacity"`
	CurrentQuantity       int                  `json:"current_quantity"`
	AvailableCapacity     int                  `json:"available_capacity"`
	UtilizationRate       float64              `json:"utilization_rate"`
	Items                 map[string]ItemState `json:"items"`
	AssociatedWarehouseID string               `json:"associated_warehouse_id,omitempty"`
}

// ShipmentRequestState es la proyección de una solicitud de envío activa.
type ShipmentRequestState struct {
	RequestID            string         `json:"request_id"`
	ItemRequests         map[string]int `json:"item_requests"`
	DestinationWarehouse string         `json:"destination_warehouse"`
	RequestedDate        time.Time      `json:"requested_date"`
	Status               string         `json:"status"`
}

// SystemSummary agrega los totales del sistema.
type SystemSummary struct {
	TotalItems             int             `json:"total_items"`
	TotalCapacity          int             `json:"total_capacity"`
	TotalAvailableCapacity int             `json:"total_available_capacity"`
	OverallUtilizationRate float64         `json:"overall_utilization_rate"`
	TotalValue             decimal.Decimal `json:"total_value"`
}

// Snapshot es la proyección inmutable y serializable de todo el estado del
// motor en un instante. Se recalcula bajo demanda, opera sobre copias y no
// guarda referencias al estado vivo; su forma es el contrato de cable entre
// el motor y cualquier validador externo.
type Snapshot struct {
	SystemID               string                          `json:"system_id"`
	Timestamp              time.Time                       `json:"timestamp"`
	TotalWarehouses        int                             `json:"total_warehouses"`
	TotalShowrooms         int                             `json:"total_showrooms"`
	Warehouses             map[string]LocationState        `json:"warehouses"`
	Showrooms              map[string]LocationState        `json:"showrooms"`
	ActiveShipmentRequests map[string]ShipmentRequestState `json:"active_shipment_requests"`
	Summary                SystemSummary                   `json:"summary"`
	WarehouseAssociations  map[string]string               `json:"warehouse_associations"`
	SystemStatus           string                          `json:"system_status"`
}
