package main

import (
	"encoding/json"
	"os"

	"github.com/jhoicas/inventario-crisis/internal/application/inventory"
	"github.com/jhoicas/inventario-crisis/internal/application/scoring"
	"github.com/jhoicas/inventario-crisis/internal/domain/scenario"
	infrapdf "github.com/jhoicas/inventario-crisis/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-crisis/internal/interfaces/script"
	"github.com/jhoicas/inventario-crisis/pkg/config"
	"github.com/jhoicas/inventario-crisis/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando simulación")

	// Escenario: archivo YAML o el escenario de crisis por defecto.
	sc := scenario.Default()
	if cfg.Sim.ScenarioPath != "" {
		sc, err = scenario.Load(cfg.Sim.ScenarioPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Sim.ScenarioPath).Msg("cargar escenario")
		}
	}
	log.Info().
		Str("scenario", sc.Name).
		Int("warehouses", len(sc.Warehouses)).
		Int("showrooms", len(sc.Showrooms)).
		Msg("escenario cargado")

	engine, err := inventory.New(sc, log.Component("engine"))
	if err != nil {
		log.Fatal().Err(err).Msg("construir motor")
	}

	// Guion de operaciones (JSON-lines), si se configuró.
	if cfg.Sim.ScriptPath != "" {
		f, err := os.Open(cfg.Sim.ScriptPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Sim.ScriptPath).Msg("abrir guion de operaciones")
		}
		runner := script.NewRunner(engine, log)
		results, err := runner.Run(f)
		_ = f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("ejecutar guion de operaciones")
		}
		failed := 0
		for _, r := range results {
			if !r.Success {
				failed++
			}
		}
		log.Info().
			Int("operations", len(results)).
			Int("failed", failed).
			Msg("guion ejecutado")
	}

	// Snapshot + evaluación de crisis.
	snap := engine.InventoryStatus()
	assessment, err := scoring.NewScorer(sc).Score(snap, engine.Log())
	if err != nil {
		log.Fatal().Err(err).Msg("evaluar snapshot")
	}

	report := struct {
		Snapshot   any `json:"snapshot"`
		Assessment any `json:"assessment"`
	}{snap, assessment}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("serializar informe")
	}
	if _, err := os.Stdout.Write(append(out, '\n')); err != nil {
		log.Fatal().Err(err).Msg("escribir informe")
	}

	// Informe PDF, si se configuró una ruta de salida.
	if cfg.Sim.ReportPDF != "" {
		pdfBytes, err := infrapdf.NewMarotoReportGenerator().GenerateCrisisReport(snap, assessment)
		if err != nil {
			log.Fatal().Err(err).Msg("generar informe PDF")
		}
		if err := os.WriteFile(cfg.Sim.ReportPDF, pdfBytes, 0o644); err != nil {
			log.Fatal().Err(err).Msg("escribir informe PDF")
		}
		log.Info().Str("path", cfg.Sim.ReportPDF).Msg("informe PDF generado")
	}
}
