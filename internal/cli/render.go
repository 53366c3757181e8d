// Package cli implementa el render de salida de los comandos y el prefijo
// de error por verbo. Los formatos son la superficie estable que consume
// el operador: cambiarlos rompe a cualquier script que parsee la salida.
package cli

import (
	"fmt"
	"io"

	"github.com/dropDatabas3/userctl/internal/domain/repository"
)

// FprintUser escribe el bloque de detalle de un usuario:
//
//	Email: user@example.com
//	Username: username
//	Phone: 1234567890
//	Age: 25
func FprintUser(w io.Writer, u repository.User) {
	fmt.Fprintf(w, "Email: %s\n", u.Email)
	fmt.Fprintf(w, "Username: %s\n", u.Username)
	fmt.Fprintf(w, "Phone: %s\n", u.Phone)
	fmt.Fprintf(w, "Age: %d\n", u.Age)
}

// FprintUserList escribe la tabla de dos columnas Email / Username con
// header y regla separadora.
func FprintUserList(w io.Writer, users []repository.User) {
	fmt.Fprintln(w, "User list:")
	fmt.Fprintln(w, "Email\t\tUsername")
	fmt.Fprintln(w, "------------------------")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\n", u.Email, u.Username)
	}
}

// WrapVerb antepone el prefijo del verbo a un error de dominio, dejando el
// error original accesible vía errors.Is/As:
//
//	Failed to create user: InvalidEmail("Invalid email format: x")
func WrapVerb(verb string, err error) error {
	return fmt.Errorf("Failed to %s user: %w", verb, err)
}
