package logger

import "go.uber.org/zap"

// Campos estándar para logs estructurados del dominio.

// Email crea un campo para el email de un usuario.
func Email(v string) zap.Field {
	return zap.String("email", v)
}

// Op crea un campo para la operación actual (create, update, ...).
func Op(v string) zap.Field {
	return zap.String("op", v)
}

// Path crea un campo para una ruta de archivo.
func Path(v string) zap.Field {
	return zap.String("path", v)
}

// Count crea un campo para un conteo.
func Count(v int) zap.Field {
	return zap.Int("count", v)
}

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// String crea un campo string genérico.
func String(key, v string) zap.Field {
	return zap.String(key, v)
}

// Int crea un campo int genérico.
func Int(key string, v int) zap.Field {
	return zap.Int(key, v)
}
