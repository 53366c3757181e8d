// Package logger provides a singleton Zap logger for the CLI.
//
// # Design Decisions
//
//   - Singleton: Una sola instancia global inicializada con Init() en main.
//   - Environments: "dev" usa consola con colores, "prod" usa JSON.
//   - Levels: debug, info, warn, error (configurable via LOG_LEVEL).
//   - Los logs van a stderr; stdout queda reservado para la salida de
//     los comandos (tablas, detalle de usuario).
//
// # Usage
//
//	logger.Init(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})
//	defer logger.Sync()
//
//	log := logger.Named("store.fs")
//	log.Debug("record set loaded", logger.Count(len(set)))
package logger
