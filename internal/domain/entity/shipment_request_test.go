package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-crisis/internal/domain"
	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
)

func pendingRequest() *entity.ShipmentRequest {
	return &entity.ShipmentRequest{
		RequestID:            "REQ_DEADBEEF",
		ItemRequests:         map[string]int{"ITEM001": 5},
		DestinationWarehouse: "WH001",
		Status:               entity.RequestStatusPending,
	}
}

// Caso 1: solo los estados en curso cuentan como activos.
func TestShipmentRequest_Active(t *testing.T) {
	r := pendingRequest()
	assert.True(t, r.Active())

	require.NoError(t, r.MarkDelivered())
	assert.False(t, r.Active())

	r = pendingRequest()
	require.NoError(t, r.Cancel())
	assert.False(t, r.Active())
}

// Caso 2: una solicitud cancelada no puede entregarse.
func TestShipmentRequest_CanceladaNoSeEntrega(t *testing.T) {
	r := pendingRequest()
	require.NoError(t, r.Cancel())

	err := r.MarkDelivered()

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.RequestStatusCancelled, r.Status, "el estado no debe retroceder")
}

// Caso 3: una solicitud entregada no puede cancelarse; re-entregarla es no-op.
func TestShipmentRequest_EntregadaNoSeCancela(t *testing.T) {
	r := pendingRequest()
	require.NoError(t, r.MarkDelivered())

	assert.ErrorIs(t, r.Cancel(), domain.ErrConflict)
	assert.NoError(t, r.MarkDelivered(), "re-marcar entregada es idempotente")
	assert.Equal(t, entity.RequestStatusDelivered, r.Status)
}
