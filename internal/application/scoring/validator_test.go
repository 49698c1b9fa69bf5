package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-crisis/internal/application/dto"
	"github.com/jhoicas/inventario-crisis/internal/application/inventory"
	"github.com/jhoicas/inventario-crisis/internal/application/scoring"
	"github.com/jhoicas/inventario-crisis/internal/domain/scenario"
)

// crisisEngine arma el motor con el escenario de crisis estándar y algo de
// stock en la bodega de Chicago.
func crisisEngine(t *testing.T) *inventory.Engine {
	t.Helper()
	engine, err := inventory.New(scenario.Default(), nil)
	require.NoError(t, err)
	req := engine.RequestShipment(map[string]int{"ITEM001": 20, "ITEM002": 10}, "WH003")
	require.True(t, req.Success)
	require.True(t, engine.ReceiveShipment(req.RequestID, map[string]int{"ITEM001": 20, "ITEM002": 10}).Success)
	return engine
}

// Caso 1: todo snapshot producido por el motor pasa la validación.
func TestValidateSnapshot_SnapshotDelMotor(t *testing.T) {
	engine := crisisEngine(t)
	engine.TransferBetweenWarehouses("WH003", "WH001", "ITEM001", 8)
	engine.MoveToShowroom("WH003", "SR003", "ITEM002", 4)
	engine.MoveToShowroom("WH003", "SR001", "ITEM001", 1) // fallo por asociación

	assert.NoError(t, scoring.ValidateSnapshot(engine.InventoryStatus()))
}

// Caso 2: la validación acumula todas las violaciones en una sola pasada,
// no solo la primera.
func TestValidateSnapshot_AcumulaViolaciones(t *testing.T) {
	engine := crisisEngine(t)
	snap := engine.InventoryStatus()

	// Tres sabotajes independientes.
	wh := snap.Warehouses["WH003"]
	wh.CurrentQuantity = wh.Capacity + 1 // capacidad excedida y suma de items rota
	snap.Warehouses["WH003"] = wh
	snap.Summary.TotalItems = 9999                // resumen inconsistente
	snap.WarehouseAssociations["SR999"] = "WH001" // sala inexistente

	err := scoring.ValidateSnapshot(snap)

	var verr *scoring.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Violations), 3,
		"deben reportarse todas las violaciones: %v", verr.Violations)
}

// Caso 3: violaciones puntuales se detectan con el invariante correcto.
func TestValidateSnapshot_ViolacionesPuntuales(t *testing.T) {
	tests := []struct {
		name     string
		sabotage func(snap *dto.Snapshot)
	}{
		{
			name: "aritmética de capacidad rota",
			sabotage: func(snap *dto.Snapshot) {
				wh := snap.Warehouses["WH001"]
				wh.AvailableCapacity++
				snap.Warehouses["WH001"] = wh
			},
		},
		{
			name: "asociación hacia bodega inexistente",
			sabotage: func(snap *dto.Snapshot) {
				sr := snap.Showrooms["SR001"]
				sr.AssociatedWarehouseID = "WH999"
				snap.Showrooms["SR001"] = sr
				snap.WarehouseAssociations["SR001"] = "WH999"
			},
		},
		{
			name: "valor de item inconsistente",
			sabotage: func(snap *dto.Snapshot) {
				wh := snap.Warehouses["WH003"]
				item := wh.Items["ITEM001"]
				item.Value = item.Value.Add(item.UnitPrice)
				wh.Items["ITEM001"] = item
				snap.Warehouses["WH003"] = wh
			},
		},
		{
			name: "total de bodegas declarado incorrecto",
			sabotage: func(snap *dto.Snapshot) {
				snap.TotalWarehouses = 99
			},
		},
		{
			name: "tasa de utilización global alterada",
			sabotage: func(snap *dto.Snapshot) {
				snap.Summary.OverallUtilizationRate += 0.5
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := crisisEngine(t)
			snap := engine.InventoryStatus()
			require.NoError(t, scoring.ValidateSnapshot(snap), "el snapshot base debe ser válido")

			tt.sabotage(snap)

			var verr *scoring.ValidationError
			assert.ErrorAs(t, scoring.ValidateSnapshot(snap), &verr)
		})
	}
}
