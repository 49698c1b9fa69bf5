package dto

import (
	"time"

	"github.com/jhoicas/inventario-crisis/internal/domain"
)

// Tipos de operación del motor (valores estables del contrato externo).
const (
	OpRequestShipment   = "request_shipment"
	OpReceiveShipment   = "receive_shipment"
	OpTransferWarehouse = "transfer_warehouse"
	OpMoveToShowroom    = "move_to_showroom"
)

// OperationResult es el sobre uniforme que devuelve toda operación del motor
// y, a la vez, la entrada inmutable del log de operaciones: tipo, argumentos
// originales, éxito, timestamp y payload de resultado o mensaje de error con
// su categoría estructurada.
type OperationResult struct {
	Success       bool                 `json:"success"`
	OperationType string               `json:"operation_type"`
	OperationID   string               `json:"operation_id"`
	Timestamp     time.Time            `json:"timestamp"`
	Message       string               `json:"message"`
	Error         string               `json:"error,omitempty"`
	ErrorCategory domain.ErrorCategory `json:"error_category,omitempty"`

	// Campos específicos por operación (eco de los argumentos + resultado).
	RequestID            string         `json:"request_id,omitempty"`
	ItemRequests         map[string]int `json:"item_requests,omitempty"`
	ReceivedItems        map[string]int `json:"received_items,omitempty"`
	DestinationWarehouse string         `json:"destination_warehouse,omitempty"`
	FromWarehouse        string         `json:"from_warehouse,omitempty"`
	ToWarehouse          string         `json:"to_warehouse,omitempty"`
	WarehouseID          string         `json:"warehouse_id,omitempty"`
	ShowroomID           string         `json:"showroom_id,omitempty"`
	ItemID               string         `json:"item_id,omitempty"`
	Quantity             int            `json:"quantity,omitempty"`
	Status               string         `json:"status,omitempty"`
}
