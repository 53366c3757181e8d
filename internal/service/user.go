// Package service implementa la lógica de negocio sobre los usuarios:
// validación de campos + acceso al store, una operación por comando.
package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/dropDatabas3/userctl/internal/domain/repository"
	"github.com/dropDatabas3/userctl/internal/observability/logger"
	"github.com/dropDatabas3/userctl/internal/validation"
)

// Store abstrae la persistencia del conjunto completo de registros.
// La implementación concreta es internal/store/fs.
type Store interface {
	Load(ctx context.Context) (repository.RecordSet, error)
	Save(ctx context.Context, set repository.RecordSet) error

	// Lock / RLock toman el advisory lock del archivo y retornan el release.
	// Lock cubre la secuencia load-modify-save completa de una mutación.
	Lock(ctx context.Context) (func(), error)
	RLock(ctx context.Context) (func(), error)
}

// UserService implementa repository.UserRepository.
//
// Cada operación carga el conjunto fresco desde el store, actúa, y (si
// muta) persiste el conjunto entero. Nada sobrevive en memoria entre
// operaciones: la durabilidad vive solo en el archivo.
type UserService struct {
	store Store
	log   *zap.Logger
}

var _ repository.UserRepository = (*UserService)(nil)

// NewUserService crea el servicio sobre el store dado.
func NewUserService(store Store) *UserService {
	return &UserService{
		store: store,
		log:   logger.Named("service.user"),
	}
}

// Create valida los cuatro campos e inserta el registro nuevo.
func (s *UserService) Create(ctx context.Context, in repository.CreateUserInput) (repository.User, error) {
	if err := validateFields(in.Email, in.Username, in.Phone, in.Age); err != nil {
		return repository.User{}, err
	}

	release, err := s.store.Lock(ctx)
	if err != nil {
		return repository.User{}, err
	}
	defer release()

	set, err := s.store.Load(ctx)
	if err != nil {
		return repository.User{}, err
	}
	if _, ok := set[in.Email]; ok {
		return repository.User{}, repository.AlreadyExists(in.Email)
	}

	u := repository.User{
		Email:    in.Email,
		Username: in.Username,
		Phone:    in.Phone,
		Age:      in.Age,
	}
	set[in.Email] = u

	if err := s.store.Save(ctx, set); err != nil {
		return repository.User{}, err
	}
	s.log.Info("user created", logger.Email(u.Email))
	return u, nil
}

// Update valida los cuatro campos y reemplaza los atributos del registro
// existente. El email identifica el registro y nunca cambia la key.
func (s *UserService) Update(ctx context.Context, in repository.UpdateUserInput) (repository.User, error) {
	if err := validateFields(in.Email, in.Username, in.Phone, in.Age); err != nil {
		return repository.User{}, err
	}

	release, err := s.store.Lock(ctx)
	if err != nil {
		return repository.User{}, err
	}
	defer release()

	set, err := s.store.Load(ctx)
	if err != nil {
		return repository.User{}, err
	}
	if _, ok := set[in.Email]; !ok {
		return repository.User{}, repository.NotFound(in.Email)
	}

	u := repository.User{
		Email:    in.Email,
		Username: in.Username,
		Phone:    in.Phone,
		Age:      in.Age,
	}
	set[in.Email] = u

	if err := s.store.Save(ctx, set); err != nil {
		return repository.User{}, err
	}
	s.log.Info("user updated", logger.Email(u.Email))
	return u, nil
}

// Get retorna el registro del email dado.
func (s *UserService) Get(ctx context.Context, email string) (repository.User, error) {
	release, err := s.store.RLock(ctx)
	if err != nil {
		return repository.User{}, err
	}
	defer release()

	set, err := s.store.Load(ctx)
	if err != nil {
		return repository.User{}, err
	}
	u, ok := set[email]
	if !ok {
		return repository.User{}, repository.NotFound(email)
	}
	return u, nil
}

// List retorna todos los registros ordenados por email.
// Es una operación de solo lectura: nunca escribe el archivo.
func (s *UserService) List(ctx context.Context) ([]repository.User, error) {
	release, err := s.store.RLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	set, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]repository.User, 0, len(set))
	for _, u := range set {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

// Delete elimina el registro del email dado.
func (s *UserService) Delete(ctx context.Context, email string) error {
	release, err := s.store.Lock(ctx)
	if err != nil {
		return err
	}
	defer release()

	set, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, ok := set[email]; !ok {
		// No hay registro: el archivo queda intacto, sin re-escritura.
		return repository.NotFound(email)
	}
	delete(set, email)

	if err := s.store.Save(ctx, set); err != nil {
		return err
	}
	s.log.Info("user deleted", logger.Email(email))
	return nil
}

// validateFields corre los cuatro validadores antes de cualquier I/O.
// Una falla acá nunca llega a tocar el store.
func validateFields(email, username, phone string, age int) error {
	if err := validation.Email(email); err != nil {
		return err
	}
	if err := validation.Username(username); err != nil {
		return err
	}
	if err := validation.Phone(phone); err != nil {
		return err
	}
	if err := validation.Age(age); err != nil {
		return err
	}
	return nil
}
