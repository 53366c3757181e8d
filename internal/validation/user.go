// Package validation contiene los validadores puros de campos de usuario.
//
// Field rules:
//   - email: local part, '@', domain with at least one dot. Example: user@example.com
//   - username: non-blank, length >= 3.
//   - phone: decimal digits only, length >= 10. No separators ('-', ' ', '+').
//   - age: integer in 0..150.
//
// Todos los validadores se evalúan antes de cualquier I/O de persistencia:
// una falla de validación nunca produce una mutación parcial.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dropDatabas3/userctl/internal/domain/repository"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\d{10,}$`)
)

// Email valida el formato del email.
func Email(s string) error {
	if !emailRe.MatchString(s) {
		return repository.NewError(repository.KindInvalidEmail, "Invalid email format: %s", s)
	}
	return nil
}

// Username valida que el username no sea blanco y tenga al menos 3 caracteres.
func Username(s string) error {
	if strings.TrimSpace(s) == "" || len(s) < 3 {
		return repository.NewError(repository.KindInvalidUsername, "Username must be at least 3 characters long")
	}
	return nil
}

// Phone valida que el teléfono sean solo dígitos, al menos 10.
func Phone(s string) error {
	if !phoneRe.MatchString(s) {
		return repository.NewError(repository.KindInvalidPhone, "Phone number must be at least 10 digits")
	}
	return nil
}

// Age valida el rango de edad.
func Age(n int) error {
	if n < 0 || n > 150 {
		return repository.NewError(repository.KindInvalidAge, "Age must be between 0 and 150")
	}
	return nil
}

// ParseAge parsea la edad desde su forma textual (argumento de CLI).
// Un input no entero es un InvalidAge con razón de parseo, distinto del
// InvalidAge de rango.
func ParseAge(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, repository.NewError(repository.KindInvalidAge, "Invalid age format: %s", s)
	}
	return n, nil
}
