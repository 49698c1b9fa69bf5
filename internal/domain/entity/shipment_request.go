package entity

import (
	"time"

	"github.com/jhoicas/inventario-crisis/internal/domain"
)

// Estados del ciclo de vida de una solicitud de envío. Las transiciones son
// de una sola vía: pending → (approved → shipped →) delivered | cancelled.
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusShipped   = "shipped"
	RequestStatusDelivered = "delivered"
	RequestStatusCancelled = "cancelled"
)

// ShipmentRequest representa una solicitud de envío hacia una bodega destino.
type ShipmentRequest struct {
	RequestID            string
	ItemRequests         map[string]int // item_id -> cantidad solicitada (positiva)
	DestinationWarehouse string
	RequestedDate        time.Time
	Status               string
}

// Active indica si la solicitud sigue en curso (aún no entregada ni cancelada).
func (r *ShipmentRequest) Active() bool {
	switch r.Status {
	case RequestStatusPending, RequestStatusApproved, RequestStatusShipped:
		return true
	}
	return false
}

// MarkDelivered transiciona la solicitud a delivered. Una solicitud cancelada
// no puede entregarse; re-marcar una entregada es un no-op.
func (r *ShipmentRequest) MarkDelivered() error {
	if r.Status == RequestStatusCancelled {
		return domain.ErrConflict
	}
	r.Status = RequestStatusDelivered
	return nil
}

// Cancel transiciona la solicitud a cancelled. Una solicitud entregada ya no
// puede cancelarse (las transiciones nunca retroceden).
func (r *ShipmentRequest) Cancel() error {
	if r.Status == RequestStatusDelivered {
		return domain.ErrConflict
	}
	r.Status = RequestStatusCancelled
	return nil
}
