package repository

import (
	"errors"
	"fmt"
)

// Kind identifica la categoría de un error de dominio.
// El set es cerrado: toda operación falible retorna uno de estos kinds.
type Kind string

const (
	KindInvalidEmail      Kind = "InvalidEmail"
	KindInvalidUsername   Kind = "InvalidUsername"
	KindInvalidPhone      Kind = "InvalidPhone"
	KindInvalidAge        Kind = "InvalidAge"
	KindUserAlreadyExists Kind = "UserAlreadyExists"
	KindUserNotFound      Kind = "UserNotFound"
	KindParseError        Kind = "ParseError"
	KindIoError           Kind = "IoError"
)

// Error es un error de dominio etiquetado: categoría + razón legible.
// Se renderiza como `Kind("reason")`, que es el formato que la capa CLI
// expone tal cual al operador.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%q)", e.Kind, e.Reason)
}

// Is permite usar errors.Is contra los sentinels de abajo: dos errores de
// dominio se consideran equivalentes si comparten Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewError construye un error de dominio con razón formateada.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Sentinels por Kind, para chequear con errors.Is sin importar la razón.
var (
	ErrInvalidEmail      = &Error{Kind: KindInvalidEmail}
	ErrInvalidUsername   = &Error{Kind: KindInvalidUsername}
	ErrInvalidPhone      = &Error{Kind: KindInvalidPhone}
	ErrInvalidAge        = &Error{Kind: KindInvalidAge}
	ErrUserAlreadyExists = &Error{Kind: KindUserAlreadyExists}
	ErrUserNotFound      = &Error{Kind: KindUserNotFound}
	ErrParse             = &Error{Kind: KindParseError}
	ErrIO                = &Error{Kind: KindIoError}
)

// NotFound construye el UserNotFound canónico para un email.
func NotFound(email string) *Error {
	return NewError(KindUserNotFound, "User with email %s not found", email)
}

// AlreadyExists construye el UserAlreadyExists canónico para un email.
func AlreadyExists(email string) *Error {
	return NewError(KindUserAlreadyExists, "User with email %s already exists", email)
}
