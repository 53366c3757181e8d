// Package config resuelve la configuración del proceso una sola vez al
// inicio. El environment nunca se vuelve a leer a mitad de una operación:
// el resultado es un valor explícito que se pasa hacia abajo.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultDataFile es la ruta por defecto del archivo de usuarios,
// relativa al working directory del proceso.
const DefaultDataFile = "userdata.json"

// Config es la configuración resuelta del proceso.
type Config struct {
	// Env define el entorno: dev | prod. Controla el encoding del logger.
	Env string

	// LogLevel es el nivel mínimo de log: debug | info | warn | error.
	LogLevel string

	// DataFile es la ruta del archivo JSON con el conjunto de usuarios.
	// Viene de USER_DATA_FILE si está seteado y no vacío.
	DataFile string
}

// Load carga .env (best-effort, puede no existir) y resuelve la
// configuración desde el environment.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		Env:      envOr("APP_ENV", "dev"),
		LogLevel: envOr("LOG_LEVEL", "info"),
		DataFile: envOr("USER_DATA_FILE", DefaultDataFile),
	}
}

// envOr retorna el valor del env var, o def si no está seteado o es blanco.
func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
