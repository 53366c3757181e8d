package repository

import "context"

// User representa un registro de usuario.
//
// El email es la identidad del registro: único dentro del conjunto e
// inmutable después de la creación. Username, phone y age son los
// atributos mutables.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
}

// RecordSet es el conjunto completo de usuarios, indexado por email.
// La unicidad de emails está garantizada por construcción: es la key del map.
type RecordSet map[string]User

// CreateUserInput contiene los datos para crear un usuario.
type CreateUserInput struct {
	Email    string
	Username string
	Phone    string
	Age      int
}

// UpdateUserInput contiene los nuevos atributos de un usuario existente.
// Email identifica el registro a actualizar; nunca cambia la key.
type UpdateUserInput struct {
	Email    string
	Username string
	Phone    string
	Age      int
}

// UserRepository define el contrato de negocio sobre los usuarios.
//
// Cada operación carga el conjunto completo desde storage, actúa, y (si
// muta) lo persiste de vuelta. Las fallas son terminales: no hay retries
// ni éxito parcial.
type UserRepository interface {
	// Create valida los cuatro campos e inserta el registro.
	// Retorna ErrUserAlreadyExists si el email ya es una key.
	Create(ctx context.Context, in CreateUserInput) (User, error)

	// Update valida los cuatro campos y reemplaza los atributos del
	// registro existente. Retorna ErrUserNotFound si el email no existe.
	Update(ctx context.Context, in UpdateUserInput) (User, error)

	// Get retorna el registro del email dado, o ErrUserNotFound.
	Get(ctx context.Context, email string) (User, error)

	// List retorna todos los registros en orden estable (por email).
	// Un conjunto vacío retorna una lista vacía, no un error.
	List(ctx context.Context) ([]User, error)

	// Delete elimina el registro del email dado, o ErrUserNotFound.
	Delete(ctx context.Context, email string) error
}
