// Package scoring deriva, a partir de un snapshot y del log de operaciones,
// la evaluación del escenario de crisis: progreso por nivel de prioridad,
// métrica de eficiencia, banderas de adherencia a restricciones y validación
// estructural del snapshot.
package scoring

import (
	"github.com/jhoicas/inventario-crisis/internal/application/dto"
	"github.com/jhoicas/inventario-crisis/internal/domain"
	"github.com/jhoicas/inventario-crisis/internal/domain/entity"
	"github.com/jhoicas/inventario-crisis/internal/domain/scenario"
)

// Umbrales heurísticos de manejo de crisis.
const (
	efficiencyPerOperation     = 10 // denominador: items esperados por operación
	intelligentAllocationFloor = 20 // items colocados para considerar asignación estratégica
	bottleneckHandlingFloor    = 10 // items colocados para considerar cuellos de botella superados
	multiStepPlanningFloor     = 5  // operaciones para considerar planeación multi-paso
)

// TierScore es el progreso de un nivel de prioridad: media, sobre sus
// objetivos (ubicación, item, cantidad), de min(actual/objetivo, 1.0).
type TierScore struct {
	Name      string  `json:"name"`
	Progress  float64 `json:"progress"`
	Attempted bool    `json:"attempted"`
}

// Assessment es la evaluación completa del escenario.
type Assessment struct {
	ScenarioName string      `json:"scenario_type"`
	TierScores   []TierScore `json:"tier_scores"`

	TotalItemsPlaced    int     `json:"total_items_placed"`
	OperationsPerformed int     `json:"total_operations_performed"`
	EfficiencyScore     float64 `json:"efficiency_score"`

	RespectedCapacityLimits    bool `json:"respected_capacity_limits"`
	RespectedOperationalLimits bool `json:"respected_operational_limits"`
	PriorityAdherence          bool `json:"priority_adherence"`

	IntelligentAllocation bool `json:"intelligent_resource_allocation"`
	HandledBottlenecks    bool `json:"handled_bottlenecks"`
	MultiStepPlanning     bool `json:"multi_step_planning"`

	AssociationsValid map[string]bool `json:"associations_valid"`
	ItemDetailsValid  map[string]bool `json:"item_details_valid"`
}

// Scorer evalúa snapshots contra los tiers y asociaciones de un escenario.
// Opera exclusivamente sobre la proyección y el log: nunca sobre estado vivo.
type Scorer struct {
	scenarioName string
	tiers        []scenario.TierSpec
	associations map[string]string
	catalog      entity.Catalog
}

// NewScorer construye el scorer a partir del escenario.
func NewScorer(sc *scenario.Scenario) *Scorer {
	return &Scorer{
		scenarioName: sc.Name,
		tiers:        sc.Tiers,
		associations: sc.Associations(),
		catalog:      sc.EntityCatalog(),
	}
}

// Score valida el snapshot y deriva la evaluación. Un snapshot con
// violaciones estructurales se rechaza con *ValidationError sin coerción.
func (s *Scorer) Score(snap *dto.Snapshot, oplog []dto.OperationResult) (*Assessment, error) {
	if err := ValidateSnapshot(snap); err != nil {
		return nil, err
	}

	a := &Assessment{
		ScenarioName:        s.scenarioName,
		OperationsPerformed: len(oplog),
		AssociationsValid:   map[string]bool{},
		ItemDetailsValid:    map[string]bool{},
	}

	// Progreso por tier. El primer tier cuenta como intentado con cualquier
	// operación registrada; los siguientes, solo con progreso real.
	for i, tier := range s.tiers {
		progress := tierProgress(snap, tier)
		attempted := progress > 0
		if i == 0 {
			attempted = len(oplog) > 0
		}
		a.TierScores = append(a.TierScores, TierScore{
			Name:      tier.Name,
			Progress:  progress,
			Attempted: attempted,
		})
	}

	// Total de items colocados en salas de exhibición.
	for _, sr := range snap.Showrooms {
		a.TotalItemsPlaced += sr.CurrentQuantity
	}

	// Eficiencia: items colocados por operación, normalizada y acotada en 1.0.
	if a.OperationsPerformed > 0 {
		score := float64(a.TotalItemsPlaced) / float64(a.OperationsPerformed*efficiencyPerOperation)
		if score > 1.0 {
			score = 1.0
		}
		a.EfficiencyScore = score
	}

	// Banderas de adherencia desde las categorías estructuradas del log
	// (nunca desde el texto del mensaje).
	a.RespectedCapacityLimits = true
	a.RespectedOperationalLimits = true
	for _, entry := range oplog {
		if entry.Success {
			continue
		}
		switch entry.ErrorCategory {
		case domain.CategoryCapacityExceeded, domain.CategoryInsufficientQuantity:
			a.RespectedCapacityLimits = false
		case domain.CategoryAssociationViolation, domain.CategoryInvalidInput:
			a.RespectedOperationalLimits = false
		}
	}

	// Adherencia a prioridades: el tier 1 debe ir al menos tan avanzado como el tier 2.
	a.PriorityAdherence = true
	if len(a.TierScores) >= 2 {
		a.PriorityAdherence = a.TierScores[0].Progress >= a.TierScores[1].Progress
	}

	a.IntelligentAllocation = a.TotalItemsPlaced > intelligentAllocationFloor
	a.HandledBottlenecks = a.TotalItemsPlaced > bottleneckHandlingFloor
	a.MultiStepPlanning = a.OperationsPerformed > multiStepPlanningFloor

	// Asociaciones sala→bodega contra el mapeo esperado del escenario.
	for srID, expected := range s.associations {
		sr, ok := snap.Showrooms[srID]
		a.AssociationsValid[srID] = ok && sr.AssociatedWarehouseID == expected
	}

	// Identidad de items del catálogo dondequiera que aparezcan.
	for itemID := range s.catalog {
		a.ItemDetailsValid[itemID] = s.itemDetailsValid(snap, itemID)
	}

	return a, nil
}

// tierProgress calcula la media de min(actual/objetivo, 1.0) sobre los
// objetivos del tier. El progreso nunca decrece al colocar más unidades y
// se satura en 1.0 una vez alcanzado el objetivo.
func tierProgress(snap *dto.Snapshot, tier scenario.TierSpec) float64 {
	if len(tier.Requirements) == 0 {
		return 0
	}
	sum := 0.0
	for _, req := range tier.Requirements {
		ratio := float64(quantityAt(snap, req.LocationID, req.ItemID)) / float64(req.Quantity)
		if ratio > 1.0 {
			ratio = 1.0
		}
		sum += ratio
	}
	return sum / float64(len(tier.Requirements))
}

// quantityAt busca la cantidad de un item en una ubicación del snapshot
// (salas primero, luego bodegas); 0 si no aparece.
func quantityAt(snap *dto.Snapshot, locationID, itemID string) int {
	if loc, ok := snap.Showrooms[locationID]; ok {
		return loc.Items[itemID].Quantity
	}
	if loc, ok := snap.Warehouses[locationID]; ok {
		return loc.Items[itemID].Quantity
	}
	return 0
}

func (s *Scorer) itemDetailsValid(snap *dto.Snapshot, itemID string) bool {
	check := func(locations map[string]dto.LocationState) bool {
		for _, loc := range locations {
			if item, ok := loc.Items[itemID]; ok {
				if !s.catalog.Matches(itemID, item.Name, item.Category) {
					return false
				}
			}
		}
		return true
	}
	return check(snap.Warehouses) && check(snap.Showrooms)
}
