// Package scenario define el escenario de simulación: ubicaciones con sus
// capacidades, catálogo de items y niveles de prioridad (tiers) con los
// objetivos de cumplimiento que evalúa el scorer.
package scenario

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/inventario-crisis/internal/domain"
	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
)

// WarehouseSpec define una bodega inicial (vacía).
type WarehouseSpec struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Address  string `mapstructure:"address"`
	Capacity int    `mapstructure:"capacity"`
}

// ShowroomSpec define una sala de exhibición inicial (vacía) y su bodega asociada.
type ShowroomSpec struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Address     string `mapstructure:"address"`
	WarehouseID string `mapstructure:"warehouse_id"`
	Capacity    int    `mapstructure:"capacity"`
}

// ItemSpec define la identidad fija de un item del catálogo.
// El catálogo es un slice (no un mapa) porque Viper normaliza a minúsculas
// las claves de los mapas de configuración y corrompería IDs como ITEM001.
type ItemSpec struct {
	ID        string          `mapstructure:"id"`
	Name      string          `mapstructure:"name"`
	UnitPrice decimal.Decimal `mapstructure:"unit_price"`
	Category  string          `mapstructure:"category"`
}

// RequirementSpec es un objetivo de cumplimiento: cantidad de un item en una ubicación.
type RequirementSpec struct {
	LocationID string `mapstructure:"location_id"`
	ItemID     string `mapstructure:"item_id"`
	Quantity   int    `mapstructure:"quantity"`
}

// TierSpec agrupa objetivos bajo un nivel de prioridad con nombre.
// El orden del slice define la prioridad (el primero es el más urgente).
type TierSpec struct {
	Name         string            `mapstructure:"name"`
	Requirements []RequirementSpec `mapstructure:"requirements"`
}

// Scenario agrupa la definición completa de una simulación.
type Scenario struct {
	Name       string          `mapstructure:"name"`
	Warehouses []WarehouseSpec `mapstructure:"warehouses"`
	Showrooms  []ShowroomSpec  `mapstructure:"showrooms"`
	Catalog    []ItemSpec      `mapstructure:"catalog"`
	Tiers      []TierSpec      `mapstructure:"tiers"`
}

// Default devuelve el escenario de crisis estándar: capacidades severamente
// reducidas en Nueva York y Los Ángeles, hub de gran capacidad en Chicago, y
// tres órdenes con prioridad decreciente (Order A, B, C).
func Default() *Scenario {
	return &Scenario{
		Name: "crisis_supply_chain_management",
		Warehouses: []WarehouseSpec{
			{ID: "WH001", Name: "Main Warehouse", Address: "New York", Capacity: 35},
			{ID: "WH002", Name: "West Coast Warehouse", Address: "Los Angeles", Capacity: 25},
			{ID: "WH003", Name: "Midwest Distribution", Address: "Chicago", Capacity: 820},
		},
		Showrooms: []ShowroomSpec{
			{ID: "SR001", Name: "Manhattan Showroom", Address: "New York", WarehouseID: "WH001", Capacity: 30},
			{ID: "SR002", Name: "Beverly Hills Showroom", Address: "Los Angeles", WarehouseID: "WH002", Capacity: 25},
			{ID: "SR003", Name: "Downtown Chicago Showroom", Address: "Chicago", WarehouseID: "WH003", Capacity: 300},
		},
		Catalog: []ItemSpec{
			{ID: "ITEM001", Name: "Laptop Computer", UnitPrice: decimal.RequireFromString("999.99"), Category: "electronics"},
			{ID: "ITEM002", Name: "Office Chair", UnitPrice: decimal.RequireFromString("199.99"), Category: "furniture"},
			{ID: "ITEM003", Name: "Monitor Stand", UnitPrice: decimal.RequireFromString("89.99"), Category: "furniture"},
			{ID: "ITEM004", Name: "Desk Lamp", UnitPrice: decimal.RequireFromString("49.99"), Category: "furniture"},
			{ID: "ITEM005", Name: "Notebook Pack", UnitPrice: decimal.RequireFromString("9.99"), Category: "stationery"},
		},
		Tiers: []TierSpec{
			{
				Name: "Order A",
				Requirements: []RequirementSpec{
					{LocationID: "SR001", ItemID: "ITEM001", Quantity: 12},
					{LocationID: "SR001", ItemID: "ITEM002", Quantity: 8},
					{LocationID: "SR001", ItemID: "ITEM003", Quantity: 4},
				},
			},
			{
				Name: "Order B",
				Requirements: []RequirementSpec{
					{LocationID: "SR002", ItemID: "ITEM001", Quantity: 15},
					{LocationID: "SR002", ItemID: "ITEM002", Quantity: 6},
					{LocationID: "SR002", ItemID: "ITEM004", Quantity: 10},
					{LocationID: "SR003", ItemID: "ITEM001", Quantity: 8},
					{LocationID: "SR003", ItemID: "ITEM002", Quantity: 12},
					{LocationID: "SR003", ItemID: "ITEM003", Quantity: 5},
					{LocationID: "SR003", ItemID: "ITEM004", Quantity: 4},
				},
			},
			{
				Name: "Order C",
				Requirements: []RequirementSpec{
					{LocationID: "SR001", ItemID: "ITEM005", Quantity: 3},
					{LocationID: "SR002", ItemID: "ITEM005", Quantity: 5},
					{LocationID: "SR003", ItemID: "ITEM005", Quantity: 2},
				},
			},
		},
	}
}

// Load lee un escenario desde un archivo YAML vía Viper. Los precios se
// decodifican con el hook de TextUnmarshaller (decimal acepta "999.99").
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("scenario: leer %s: %w", path, err)
	}

	var sc Scenario
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
	))
	if err := v.Unmarshal(&sc, decodeHook); err != nil {
		return nil, fmt.Errorf("scenario: decodificar %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// EntityCatalog materializa el catálogo del escenario como entity.Catalog.
func (s *Scenario) EntityCatalog() entity.Catalog {
	catalog := make(entity.Catalog, len(s.Catalog))
	for _, spec := range s.Catalog {
		catalog[spec.ID] = entity.CatalogEntry{
			Name:      spec.Name,
			UnitPrice: spec.UnitPrice,
			Category:  spec.Category,
		}
	}
	return catalog
}

// Associations devuelve el mapeo esperado showroom_id -> warehouse_id.
func (s *Scenario) Associations() map[string]string {
	assoc := make(map[string]string, len(s.Showrooms))
	for _, sr := range s.Showrooms {
		assoc[sr.ID] = sr.WarehouseID
	}
	return assoc
}

// Validate verifica la consistencia referencial del escenario: IDs únicos,
// capacidades positivas, asociaciones resolubles y tiers bien formados.
func (s *Scenario) Validate() error {
	if len(s.Warehouses) == 0 {
		return fmt.Errorf("scenario: se requiere al menos una bodega: %w", domain.ErrInvalidInput)
	}

	warehouses := make(map[string]bool, len(s.Warehouses))
	for _, wh := range s.Warehouses {
		if wh.ID == "" || wh.Capacity <= 0 {
			return fmt.Errorf("scenario: bodega %q con ID vacío o capacidad no positiva: %w", wh.ID, domain.ErrInvalidInput)
		}
		if warehouses[wh.ID] {
			return fmt.Errorf("scenario: bodega %s duplicada: %w", wh.ID, domain.ErrInvalidInput)
		}
		warehouses[wh.ID] = true
	}

	locations := make(map[string]bool, len(s.Warehouses)+len(s.Showrooms))
	for id := range warehouses {
		locations[id] = true
	}
	for _, sr := range s.Showrooms {
		if sr.ID == "" || sr.Capacity <= 0 {
			return fmt.Errorf("scenario: sala %q con ID vacío o capacidad no positiva: %w", sr.ID, domain.ErrInvalidInput)
		}
		if locations[sr.ID] {
			return fmt.Errorf("scenario: ubicación %s duplicada: %w", sr.ID, domain.ErrInvalidInput)
		}
		if !warehouses[sr.WarehouseID] {
			return fmt.Errorf("scenario: sala %s asociada a bodega desconocida %s: %w", sr.ID, sr.WarehouseID, domain.ErrNotFound)
		}
		locations[sr.ID] = true
	}

	items := make(map[string]bool, len(s.Catalog))
	for _, item := range s.Catalog {
		if item.ID == "" {
			return fmt.Errorf("scenario: item de catálogo sin ID: %w", domain.ErrInvalidInput)
		}
		if items[item.ID] {
			return fmt.Errorf("scenario: item de catálogo %s duplicado: %w", item.ID, domain.ErrInvalidInput)
		}
		items[item.ID] = true
	}

	for _, tier := range s.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("scenario: tier sin nombre: %w", domain.ErrInvalidInput)
		}
		for _, req := range tier.Requirements {
			if !locations[req.LocationID] {
				return fmt.Errorf("scenario: tier %s referencia ubicación desconocida %s: %w", tier.Name, req.LocationID, domain.ErrNotFound)
			}
			if req.Quantity <= 0 {
				return fmt.Errorf("scenario: tier %s con objetivo no positivo para %s: %w", tier.Name, req.ItemID, domain.ErrInvalidInput)
			}
		}
	}
	return nil
}
