package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
)

// Caso 1: un item del catálogo se instancia con nombre, precio y categoría conocidos.
func TestCatalog_ItemConocido(t *testing.T) {
	cat := entity.DefaultCatalog()

	item := cat.NewItem("ITEM002", 6)

	require.NotNil(t, item)
	assert.Equal(t, "Office Chair", item.Name)
	assert.Equal(t, 6, item.Quantity)
	assert.Equal(t, "furniture", item.Category)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("199.99")))
}

// Caso 2: un ID desconocido recibe la plantilla de respaldo.
func TestCatalog_ItemDesconocidoUsaRespaldo(t *testing.T) {
	cat := entity.DefaultCatalog()

	item := cat.NewItem("ITEM999", 2)

	assert.Equal(t, "Item ITEM999", item.Name)
	assert.Equal(t, "general", item.Category)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(50)))
}

// Caso 3: Matches valida detalles de items conocidos y tolera los desconocidos.
func TestCatalog_Matches(t *testing.T) {
	cat := entity.DefaultCatalog()

	assert.True(t, cat.Matches("ITEM001", "Laptop Computer", "electronics"))
	assert.False(t, cat.Matches("ITEM001", "Laptop Computer", "furniture"),
		"una categoría alterada debe detectarse")
	assert.False(t, cat.Matches("ITEM001", "Gaming Laptop", "electronics"),
		"un nombre alterado debe detectarse")
	assert.True(t, cat.Matches("ITEM999", "lo que sea", "general"),
		"un ID fuera del catálogo no se valida")
}
