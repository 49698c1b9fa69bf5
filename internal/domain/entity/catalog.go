package entity

import "github.com/shopspring/decimal"

// CatalogEntry describe la identidad fija de un item del catálogo.
type CatalogEntry struct {
	Name      string
	UnitPrice decimal.Decimal
	Category  string
}

// Catalog es la tabla de consulta de items conocidos. Los IDs desconocidos
// reciben un registro genérico de reserva (rama default explícita).
type Catalog map[string]CatalogEntry

// Precio y categoría del registro genérico para IDs fuera del catálogo.
var fallbackPrice = decimal.NewFromInt(50)

const fallbackCategory = "general"

// DefaultCatalog devuelve el catálogo estándar de cinco items.
func DefaultCatalog() Catalog {
	return Catalog{
		"ITEM001": {Name: "Laptop Computer", UnitPrice: decimal.RequireFromString("999.99"), Category: "electronics"},
		"ITEM002": {Name: "Office Chair", UnitPrice: decimal.RequireFromString("199.99"), Category: "furniture"},
		"ITEM003": {Name: "Monitor Stand", UnitPrice: decimal.RequireFromString("89.99"), Category: "furniture"},
		"ITEM004": {Name: "Desk Lamp", UnitPrice: decimal.RequireFromString("49.99"), Category: "furniture"},
		"ITEM005": {Name: "Notebook Pack", UnitPrice: decimal.RequireFromString("9.99"), Category: "stationery"},
	}
}

// NewItem construye un Item a partir del catálogo, o el genérico si el ID es
// desconocido.
func (c Catalog) NewItem(itemID string, quantity int) *Item {
	if entry, ok := c[itemID]; ok {
		return &Item{
			ID:        itemID,
			Name:      entry.Name,
			Quantity:  quantity,
			UnitPrice: entry.UnitPrice,
			Category:  entry.Category,
		}
	}
	return &Item{
		ID:        itemID,
		Name:      "Item " + itemID,
		Quantity:  quantity,
		UnitPrice: fallbackPrice,
		Category:  fallbackCategory,
	}
}

// Matches verifica que nombre y categoría correspondan a la identidad fija
// del catálogo. Para IDs desconocidos no hay identidad que validar.
func (c Catalog) Matches(itemID, name, category string) bool {
	entry, ok := c[itemID]
	if !ok {
		return true
	}
	return entry.Name == name && entry.Category == category
}
