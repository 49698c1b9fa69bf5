package config

import (
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	Log LogConfig
	Sim SimConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// SimConfig configuración de la simulación.
type SimConfig struct {
	ScenarioPath string // YAML del escenario; vacío = escenario de crisis por defecto
	ScriptPath   string // JSON-lines con operaciones a reproducir; vacío = solo estado inicial
	ReportPDF    string // ruta de salida del informe PDF; vacío = sin PDF
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, SIM_SCENARIO_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-crisis"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Sim: SimConfig{
			ScenarioPath: getString(v, "SIM_SCENARIO_PATH", ""),
			ScriptPath:   getString(v, "SIM_SCRIPT_PATH", ""),
			ReportPDF:    getString(v, "SIM_REPORT_PDF", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
