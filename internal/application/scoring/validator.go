package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-crisis/internal/application/dto"
)

// Tolerancia para comparar tasas de utilización (redondeadas a 4 decimales).
const rateTolerance = 1e-4

// ValidationError agrega todas las violaciones estructurales encontradas en
// un snapshot. Un snapshot inconsistente es un defecto del motor, no una
// condición recuperable: el scorer lo rechaza y el error se propaga.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("snapshot inválido: %d violaciones estructurales: %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// ValidateSnapshot recorre el snapshot en una sola pasada y acumula toda
// violación de los invariantes estructurales: aritmética de capacidad por
// ubicación, suma de items contra el total declarado, resolución de las
// asociaciones sala→bodega y consistencia del resumen del sistema.
// Devuelve nil o un *ValidationError con la lista completa.
func ValidateSnapshot(snap *dto.Snapshot) error {
	var violations []string
	add := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	totalItems := 0
	totalCapacity := 0
	totalValue := decimal.Zero

	checkLocation := func(kind string, loc dto.LocationState) {
		if loc.Capacity <= 0 {
			add("%s %s: capacidad no positiva (%d)", kind, loc.LocationID, loc.Capacity)
		}
		if loc.CurrentQuantity < 0 || loc.AvailableCapacity < 0 {
			add("%s %s: cantidades negativas", kind, loc.LocationID)
		}
		if loc.CurrentQuantity > loc.Capacity {
			add("%s %s: capacidad excedida (%d > %d)", kind, loc.LocationID, loc.CurrentQuantity, loc.Capacity)
		} else if loc.CurrentQuantity+loc.AvailableCapacity != loc.Capacity {
			add("%s %s: current_quantity + available_capacity != capacity (%d + %d != %d)",
				kind, loc.LocationID, loc.CurrentQuantity, loc.AvailableCapacity, loc.Capacity)
		}

		itemSum := 0
		for itemID, item := range loc.Items {
			if item.Quantity <= 0 {
				add("%s %s: item %s con cantidad no positiva (%d)", kind, loc.LocationID, itemID, item.Quantity)
			}
			expected := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if !item.Value.Equal(expected) {
				add("%s %s: item %s con valor inconsistente (%s != %s)",
					kind, loc.LocationID, itemID, item.Value, expected)
			}
			itemSum += item.Quantity
			totalValue = totalValue.Add(expected)
		}
		if itemSum != loc.CurrentQuantity {
			add("%s %s: suma de items (%d) no coincide con current_quantity (%d)",
				kind, loc.LocationID, itemSum, loc.CurrentQuantity)
		}

		if loc.Capacity > 0 {
			rate := float64(loc.CurrentQuantity) / float64(loc.Capacity)
			if math.Abs(loc.UtilizationRate-rate) > rateTolerance {
				add("%s %s: utilization_rate %.4f no coincide con %.4f",
					kind, loc.LocationID, loc.UtilizationRate, rate)
			}
		}

		totalItems += loc.CurrentQuantity
		totalCapacity += loc.Capacity
	}

	for _, wh := range snap.Warehouses {
		checkLocation("bodega", wh)
	}
	for id, sr := range snap.Showrooms {
		checkLocation("sala", sr)
		if sr.AssociatedWarehouseID == "" {
			add("sala %s: sin bodega asociada", id)
		} else if _, ok := snap.Warehouses[sr.AssociatedWarehouseID]; !ok {
			add("sala %s: asociada a bodega inexistente %s", id, sr.AssociatedWarehouseID)
		}
		if mapped, ok := snap.WarehouseAssociations[id]; !ok || mapped != sr.AssociatedWarehouseID {
			add("sala %s: warehouse_associations (%s) no coincide con la asociación declarada (%s)",
				id, mapped, sr.AssociatedWarehouseID)
		}
	}
	for id := range snap.WarehouseAssociations {
		if _, ok := snap.Showrooms[id]; !ok {
			add("warehouse_associations referencia sala inexistente %s", id)
		}
	}

	if snap.TotalWarehouses != len(snap.Warehouses) {
		add("total_warehouses (%d) no coincide con las bodegas declaradas (%d)",
			snap.TotalWarehouses, len(snap.Warehouses))
	}
	if snap.TotalShowrooms != len(snap.Showrooms) {
		add("total_showrooms (%d) no coincide con las salas declaradas (%d)",
			snap.TotalShowrooms, len(snap.Showrooms))
	}

	sum := snap.Summary
	if sum.TotalItems != totalItems {
		add("summary: total_items (%d) no coincide con la suma por ubicación (%d)", sum.TotalItems, totalItems)
	}
	if sum.TotalCapacity != totalCapacity {
		add("summary: total_capacity (%d) no coincide con la suma por ubicación (%d)", sum.TotalCapacity, totalCapacity)
	}
	if sum.TotalAvailableCapacity != totalCapacity-totalItems {
		add("summary: total_available_capacity (%d) no coincide con %d",
			sum.TotalAvailableCapacity, totalCapacity-totalItems)
	}
	if !sum.TotalValue.Equal(totalValue) {
		add("summary: total_value (%s) no coincide con la suma por ubicación (%s)", sum.TotalValue, totalValue)
	}
	if totalCapacity > 0 {
		rate := float64(totalItems) / float64(totalCapacity)
		if math.Abs(sum.OverallUtilizationRate-rate) > rateTolerance {
			add("summary: overall_utilization_rate %.4f no coincide con %.4f", sum.OverallUtilizationRate, rate)
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
