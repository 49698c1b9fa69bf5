// Package pdf implementa la generación del informe de evaluación de crisis
// en PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del escenario  │  Fecha del snapshot         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: items / capacidad / utilización / valor total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tier | Progreso | Intentado                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BANDERAS: capacidad / operación / prioridad / eficiencia    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ubicación | Ocupación | Utilización                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-crisis/internal/application/dto"
	"github.com/jhoicas/inventario-crisis/internal/application/scoring"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el informe PDF de la evaluación de crisis.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCrisisReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCrisisReport(
	snap *dto.Snapshot,
	assessment *scoring.Assessment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Evaluación de Crisis", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snap, assessment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(snap, assessment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de progreso por tier
	m.AddRows(tierHeaderRow())
	for _, r := range tierRows(assessment) {
		m.AddRows(r)
	}

	// Banderas de adherencia
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(flagsRow(assessment))

	// Ocupación por ubicación
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(locationHeaderRow())
	for _, r := range locationRows(snap) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del escenario (izq) y timestamp del snapshot (der).
func headerRow(snap *dto.Snapshot, assessment *scoring.Assessment) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("EVALUACIÓN DE GESTIÓN DE CRISIS", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Escenario: "+assessment.ScenarioName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(snap.SystemID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+snap.Timestamp.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del sistema en una línea.
func summaryRow(snap *dto.Snapshot, assessment *scoring.Assessment) core.Row {
	sum := snap.Summary
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN DEL SISTEMA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf(
				"Items: %d   |   Capacidad: %d   |   Utilización: %.2f%%   |   Valor total: $%s   |   Operaciones: %d",
				sum.TotalItems, sum.TotalCapacity, sum.OverallUtilizationRate*100,
				sum.TotalValue.StringFixed(2), assessment.OperationsPerformed,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tierHeaderRow: cabecera de la tabla de progreso por tier.
func tierHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nivel de prioridad", 6, align.Left),
		h("Progreso", 3, align.Right),
		h("Intentado", 3, align.Center),
	)
}

// tierRows: una fila por tier, en orden de prioridad.
func tierRows(assessment *scoring.Assessment) []core.Row {
	result := make([]core.Row, 0, len(assessment.TierScores))
	for _, tier := range assessment.TierScores {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				tier.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%.1f%%", tier.Progress*100),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				yesNo(tier.Attempted),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// flagsRow: banderas de adherencia y eficiencia.
func flagsRow(assessment *scoring.Assessment) core.Row {
	flag := func(label string, ok bool, top float64) core.Component {
		color := colorGray
		if !ok {
			color = colorAlert
		}
		return text.New(fmt.Sprintf("%s: %s", label, yesNo(ok)), props.Text{
			Size: 8, Top: top, Color: color,
		})
	}
	return row.New(30).Add(
		col.New(6).Add(
			text.New("ADHERENCIA A RESTRICCIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			flag("Límites de capacidad respetados", assessment.RespectedCapacityLimits, 7),
			flag("Límites operativos respetados", assessment.RespectedOperationalLimits, 12),
			flag("Adherencia a prioridades", assessment.PriorityAdherence, 17),
			flag("Planeación multi-paso", assessment.MultiStepPlanning, 22),
		),
		col.New(6).Add(
			text.New("EFICIENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Puntaje: %.3f", assessment.EfficiencyScore), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 7,
			}),
			text.New(fmt.Sprintf("Items colocados en salas: %d", assessment.TotalItemsPlaced), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
			flag("Asignación estratégica", assessment.IntelligentAllocation, 19),
			flag("Cuellos de botella superados", assessment.HandledBottlenecks, 24),
		),
	)
}

// locationHeaderRow: cabecera de la tabla de ubicaciones.
func locationHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ubicación", 6, align.Left),
		h("Ocupación", 3, align.Right),
		h("Utilización", 3, align.Right),
	)
}

// locationRows: bodegas primero, luego salas, en orden de ID.
func locationRows(snap *dto.Snapshot) []core.Row {
	result := make([]core.Row, 0, len(snap.Warehouses)+len(snap.Showrooms))
	appendStates := func(states map[string]dto.LocationState) {
		ids := make([]string, 0, len(states))
		for id := range states {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			loc := states[id]
			result = append(result, row.New(7).Add(
				col.New(6).Add(text.New(
					fmt.Sprintf("%s - %s", loc.LocationID, loc.Name),
					props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
				)),
				col.New(3).Add(text.New(
					fmt.Sprintf("%d / %d", loc.CurrentQuantity, loc.Capacity),
					props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
				)),
				col.New(3).Add(text.New(
					fmt.Sprintf("%.2f%%", loc.UtilizationRate*100),
					props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
				)),
			))
		}
	}
	appendStates(snap.Warehouses)
	appendStates(snap.Showrooms)
	return result
}

func yesNo(ok bool) string {
	if ok {
		return "Sí"
	}
	return "No"
}
