package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caso 1: el snapshot cumple la aritmética de capacidad en cada ubicación y
// en el resumen global.
func TestInventoryStatus_AritmeticaDelSnapshot(t *testing.T) {
	e := newTestEngine(t, 5)
	seedStock(t, e, "WH001", map[string]int{"ITEM001": 5, "ITEM002": 2})
	seedStock(t, e, "WH002", map[string]int{"ITEM004": 3})
	e.MoveToShowroom("WH001", "SR001", "ITEM002", 2)

	snap := e.InventoryStatus()

	assert.Equal(t, "INVENTORY_SYS_001", snap.SystemID)
	assert.Equal(t, 2, snap.TotalWarehouses)
	assert.Equal(t, 2, snap.TotalShowrooms)

	for id, loc := range snap.Warehouses {
		assert.Equal(t, loc.Capacity, loc.CurrentQuantity+loc.AvailableCapacity,
			"aritmética de capacidad rota en %s", id)
		sum := 0
		for _, item := range loc.Items {
			sum += item.Quantity
		}
		assert.Equal(t, loc.CurrentQuantity, sum, "suma de items rota en %s", id)
	}

	assert.Equal(t, 10, snap.Summary.TotalItems)
	assert.Equal(t, 10+8+5+20, snap.Summary.TotalCapacity)
	assert.Equal(t, snap.Summary.TotalCapacity-snap.Summary.TotalItems,
		snap.Summary.TotalAvailableCapacity)
	assert.InDelta(t, 10.0/43.0, snap.Summary.OverallUtilizationRate, 0.0001)

	// 5*999.99 + 2*199.99 + 3*49.99 = 5549.90
	assert.True(t, snap.Summary.TotalValue.Equal(decimal.RequireFromString("5549.90")),
		"valor total esperado 5549.90, se obtuvo %s", snap.Summary.TotalValue)
}

// Caso 2: solo las solicitudes en curso aparecen como activas.
func TestInventoryStatus_SolicitudesActivas(t *testing.T) {
	e := newTestEngine(t, 5)
	pending := e.RequestShipment(map[string]int{"ITEM001": 2}, "WH001")
	delivered := e.RequestShipment(map[string]int{"ITEM002": 1}, "WH001")
	require.True(t, e.ReceiveShipment(delivered.RequestID, map[string]int{"ITEM002": 1}).Success)

	snap := e.InventoryStatus()

	assert.Contains(t, snap.ActiveShipmentRequests, pending.RequestID)
	assert.NotContains(t, snap.ActiveShipmentRequests, delivered.RequestID)
}

// Caso 3: el snapshot es una copia profunda — mutarlo no toca el motor, y
// mutaciones posteriores del motor no lo alteran.
func TestInventoryStatus_CopiaProfunda(t *testing.T) {
	e := newTestEngine(t, 5)
	seedStock(t, e, "WH001", map[string]int{"ITEM001": 5})

	snap := e.InventoryStatus()
	item := snap.Warehouses["WH001"].Items["ITEM001"]
	item.Quantity = 999
	snap.Warehouses["WH001"].Items["ITEM001"] = item
	delete(snap.Warehouses, "WH002")

	fresh := e.InventoryStatus()
	assert.Equal(t, 5, fresh.Warehouses["WH001"].Items["ITEM001"].Quantity)
	assert.Contains(t, fresh.Warehouses, "WH002")

	// Y en la otra dirección: el snapshot viejo no ve mutaciones nuevas.
	e.TransferBetweenWarehouses("WH001", "WH002", "ITEM001", 3)
	assert.Equal(t, 999, snap.Warehouses["WH001"].Items["ITEM001"].Quantity,
		"el snapshot viejo conserva su propia copia")
	assert.Equal(t, 2, e.InventoryStatus().Warehouses["WH001"].CurrentQuantity)
}

// Caso 4: las asociaciones sala → bodega se proyectan completas.
func TestInventoryStatus_Asociaciones(t *testing.T) {
	e := newTestEngine(t, 5)

	snap := e.InventoryStatus()

	assert.Equal(t, map[string]string{"SR001": "WH001", "SR002": "WH002"},
		snap.WarehouseAssociations)
	assert.Equal(t, "WH001", snap.Showrooms["SR001"].AssociatedWarehouseID)
	assert.Empty(t, snap.Warehouses["WH001"].AssociatedWarehouseID,
		"las bodegas no llevan asociación")
}
