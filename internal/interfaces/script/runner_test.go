package script_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-crisis/internal/application/inventory"
	"github.com/jhoicas/inventario-crisis/internal/domain/scenario"
	"github.com/jhoicas/inventario-crisis/internal/interfaces/script"
)

func newRunner(t *testing.T) (*script.Runner, *inventory.Engine) {
	t.Helper()
	engine, err := inventory.New(scenario.Default(), nil)
	require.NoError(t, err)
	return script.NewRunner(engine, nil), engine
}

// Caso 1: un guion completo se ejecuta en orden y $last encadena la
// recepción con la última solicitud exitosa.
func TestRunner_GuionCompleto(t *testing.T) {
	runner, engine := newRunner(t)
	guion := `
{"op": "request_shipment", "item_requests": {"ITEM001": 20, "ITEM002": 10}, "destination_warehouse": "WH003"}
{"op": "receive_shipment", "request_id": "$last", "received_items": {"ITEM001": 20, "ITEM002": 10}}
{"op": "transfer_warehouse", "from_warehouse": "WH003", "to_warehouse": "WH001", "item_id": "ITEM001", "quantity": 8}
{"op": "move_to_showroom", "warehouse_id": "WH003", "showroom_id": "SR003", "item_id": "ITEM002", "quantity": 6}
`

	results, err := runner.Run(strings.NewReader(guion))

	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, res := range results {
		assert.True(t, res.Success, "comando %d falló: %s", i+1, res.Error)
	}
	assert.Equal(t, results[0].RequestID, results[1].RequestID,
		"$last debe resolver al request_id de la solicitud anterior")

	snap := engine.InventoryStatus()
	assert.Equal(t, 8, snap.Warehouses["WH001"].CurrentQuantity)
	assert.Equal(t, 6, snap.Showrooms["SR003"].CurrentQuantity)
	assert.Equal(t, 16, snap.Warehouses["WH003"].CurrentQuantity)
}

// Caso 2: un fallo de operación del motor no detiene el guion.
func TestRunner_FalloDelMotorNoDetiene(t *testing.T) {
	runner, engine := newRunner(t)
	guion := `
{"op": "transfer_warehouse", "from_warehouse": "WH001", "to_warehouse": "WH002", "item_id": "ITEM001", "quantity": 5}
{"op": "request_shipment", "item_requests": {"ITEM005": 3}, "destination_warehouse": "WH001"}
`

	results, err := runner.Run(strings.NewReader(guion))

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.True(t, results[1].Success)
	assert.Equal(t, 2, engine.Operations(), "ambos comandos quedan en el log")
}

// Caso 3: una operación desconocida detiene el guion con error, conservando
// los resultados previos.
func TestRunner_OperacionDesconocida(t *testing.T) {
	runner, _ := newRunner(t)
	guion := `
{"op": "request_shipment", "item_requests": {"ITEM001": 1}, "destination_warehouse": "WH001"}
{"op": "explotar_bodega"}
{"op": "request_shipment", "item_requests": {"ITEM002": 1}, "destination_warehouse": "WH001"}
`

	results, err := runner.Run(strings.NewReader(guion))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "explotar_bodega")
	assert.Len(t, results, 1, "solo el comando previo al error se ejecutó")
}

// Caso 4: JSON mal formado detiene el guion con error.
func TestRunner_JSONMalFormado(t *testing.T) {
	runner, _ := newRunner(t)

	results, err := runner.Run(strings.NewReader(`{"op": "request_shipment", ...}`))

	require.Error(t, err)
	assert.Empty(t, results)
}

// Caso 5: $last solo rastrea solicitudes exitosas.
func TestRunner_LastIgnoraSolicitudesFallidas(t *testing.T) {
	runner, _ := newRunner(t)
	guion := `
{"op": "request_shipment", "item_requests": {"ITEM001": 5}, "destination_warehouse": "WH001"}
{"op": "request_shipment", "item_requests": {"ITEM001": 5}, "destination_warehouse": "WH999"}
{"op": "receive_shipment", "request_id": "$last", "received_items": {"ITEM001": 5}}
`

	results, err := runner.Run(strings.NewReader(guion))

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.False(t, results[1].Success, "la bodega WH999 no existe")
	assert.True(t, results[2].Success,
		"$last debe apuntar a la primera solicitud, la única exitosa")
	assert.Equal(t, results[0].RequestID, results[2].RequestID)
}

// Caso 6: un guion vacío es válido y no produce resultados.
func TestRunner_GuionVacio(t *testing.T) {
	runner, _ := newRunner(t)

	results, err := runner.Run(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, results)
}
