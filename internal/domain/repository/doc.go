// Package repository define el modelo de dominio y sus contratos.
//
// El tipo User y el contrato UserRepository son independientes del
// almacenamiento subyacente; la implementación concreta vive en
// internal/service (orquestación) sobre internal/store/fs (persistencia).
//
// Convenciones:
//   - Context siempre es el primer parámetro
//   - Errores de dominio están en errors.go (set cerrado, Kind + Reason)
package repository
