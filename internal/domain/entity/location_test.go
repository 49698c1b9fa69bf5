package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
)

func laptopTemplate() *entity.Item {
	return &entity.Item{
		ID:        "ITEM001",
		Name:      "Laptop Computer",
		Quantity:  0,
		UnitPrice: decimal.RequireFromString("999.99"),
		Category:  "electronics",
	}
}

// Caso 1: una ubicación vacía tiene toda su capacidad disponible.
func TestLocation_VaciaTieneCapacidadCompleta(t *testing.T) {
	wh := entity.NewWarehouse("WH001", "Main Warehouse", "New York", 35)

	assert.Equal(t, 0, wh.CurrentQuantity())
	assert.Equal(t, 35, wh.AvailableCapacity())
	assert.Equal(t, 0.0, wh.UtilizationRate())
}

// Caso 2: la aritmética de capacidad se mantiene tras depósitos y retiros.
func TestLocation_AritmeticaDeCapacidad(t *testing.T) {
	wh := entity.NewWarehouse("WH001", "Main Warehouse", "New York", 10)

	wh.Deposit(laptopTemplate(), 4)
	assert.Equal(t, 4, wh.CurrentQuantity())
	assert.Equal(t, 6, wh.AvailableCapacity())
	assert.Equal(t, wh.Capacity, wh.CurrentQuantity()+wh.AvailableCapacity(),
		"current_quantity + available_capacity debe igualar la capacidad")

	wh.Deposit(laptopTemplate(), 3)
	wh.Withdraw("ITEM001", 2)
	assert.Equal(t, 5, wh.CurrentQuantity())
	assert.Equal(t, wh.Capacity, wh.CurrentQuantity()+wh.AvailableCapacity())
}

// Caso 3: depositar dos veces el mismo item acumula sobre el registro existente.
func TestLocation_DepositoAcumulaCantidad(t *testing.T) {
	wh := entity.NewWarehouse("WH001", "Main Warehouse", "New York", 20)

	wh.Deposit(laptopTemplate(), 5)
	wh.Deposit(laptopTemplate(), 3)

	require.Len(t, wh.Items, 1, "debe existir un único registro por item")
	assert.Equal(t, 8, wh.QuantityOf("ITEM001"))
}

// Caso 4: retirar hasta cero elimina el registro, nunca queda en cantidad 0.
func TestLocation_RetiroTotalEliminaElItem(t *testing.T) {
	wh := entity.NewWarehouse("WH001", "Main Warehouse", "New York", 20)
	wh.Deposit(laptopTemplate(), 5)

	template := wh.Withdraw("ITEM001", 5)

	assert.NotContains(t, wh.Items, "ITEM001", "un item en cantidad 0 se elimina")
	assert.Equal(t, 0, wh.QuantityOf("ITEM001"))
	// La plantilla devuelta preserva la identidad para el destino.
	assert.Equal(t, "Laptop Computer", template.Name)
	assert.Equal(t, "electronics", template.Category)
	assert.True(t, template.UnitPrice.Equal(decimal.RequireFromString("999.99")))
}

// Caso 5: el valor total es la suma de cantidad * precio unitario.
func TestLocation_ValorTotal(t *testing.T) {
	wh := entity.NewWarehouse("WH001", "Main Warehouse", "New York", 20)
	wh.Deposit(laptopTemplate(), 5)

	assert.True(t, wh.TotalValue().Equal(decimal.RequireFromString("4999.95")),
		"5 * 999.99 = 4999.95, se obtuvo %s", wh.TotalValue())
}

// Caso 6: la capacidad disponible se acota en 0 aunque el dato esté corrupto.
func TestLocation_CapacidadDisponibleNoNegativa(t *testing.T) {
	wh := entity.NewWarehouse("WH001", "Main Warehouse", "New York", 3)
	wh.Deposit(laptopTemplate(), 5) // el motor nunca lo permite; la cota es del accessor

	assert.Equal(t, 0, wh.AvailableCapacity())
}
