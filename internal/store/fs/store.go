// Package fs implementa el Persistent Store sobre un archivo JSON.
//
// El conjunto completo de registros se serializa como un objeto JSON
// indexado por email. Cada Save reemplaza el archivo entero de forma
// atómica (write-temp → fsync → rename), así una interrupción nunca deja
// un archivo truncado.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/dropDatabas3/userctl/internal/domain/repository"
	"github.com/dropDatabas3/userctl/internal/observability/logger"
	"github.com/dropDatabas3/userctl/internal/util/atomicwrite"
)

// lockRetry es el intervalo de reintento al esperar el file lock.
const lockRetry = 50 * time.Millisecond

// Store carga y persiste el RecordSet en un archivo JSON.
type Store struct {
	path string
	mu   sync.RWMutex
	fl   *flock.Flock
	log  *zap.Logger
}

// New crea un Store sobre el archivo dado. El archivo puede no existir
// todavía: un Load sobre un path inexistente retorna el conjunto vacío
// (semántica de primer arranque).
func New(path string) *Store {
	return &Store{
		path: path,
		fl:   flock.New(path + ".lock"),
		log:  logger.Named("store.fs"),
	}
}

// Path retorna la ruta del archivo de datos.
func (s *Store) Path() string { return s.path }

// Load lee el conjunto completo desde el archivo.
// Archivo inexistente o vacío ⇒ conjunto vacío. Contenido malformado ⇒
// ParseError. Cualquier otra falla de I/O ⇒ IoError.
func (s *Store) Load(ctx context.Context) (repository.RecordSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("data file does not exist, starting empty", logger.Path(s.path))
			return repository.RecordSet{}, nil
		}
		return nil, repository.NewError(repository.KindIoError, "Failed to read file: %v", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return repository.RecordSet{}, nil
	}

	var set repository.RecordSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, repository.NewError(repository.KindParseError, "Failed to parse JSON: %v", err)
	}
	if set == nil {
		set = repository.RecordSet{}
	}
	s.log.Debug("record set loaded", logger.Path(s.path), logger.Count(len(set)))
	return set, nil
}

// Save serializa el conjunto completo y reemplaza el archivo.
func (s *Store) Save(ctx context.Context, set repository.RecordSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return repository.NewError(repository.KindIoError, "Failed to serialize JSON: %v", err)
	}
	data = append(data, '\n')

	if err := atomicwrite.WriteFile(s.path, data, 0644); err != nil {
		return repository.NewError(repository.KindIoError, "Failed to write file: %v", err)
	}
	s.log.Debug("record set saved", logger.Path(s.path), logger.Count(len(set)))
	return nil
}

// Lock toma el advisory lock exclusivo del archivo (<path>.lock) y retorna
// el release. Protege la secuencia load-modify-save contra invocaciones
// concurrentes del proceso sobre el mismo archivo.
func (s *Store) Lock(ctx context.Context) (func(), error) {
	return s.acquire(ctx, s.fl.TryLockContext)
}

// RLock toma el advisory lock compartido, para operaciones de solo lectura.
func (s *Store) RLock(ctx context.Context) (func(), error) {
	return s.acquire(ctx, s.fl.TryRLockContext)
}

func (s *Store) acquire(ctx context.Context, try func(context.Context, time.Duration) (bool, error)) (func(), error) {
	ok, err := try(ctx, lockRetry)
	if err != nil {
		return nil, repository.NewError(repository.KindIoError, "Failed to lock file: %v", err)
	}
	if !ok {
		return nil, repository.NewError(repository.KindIoError, "Failed to lock file: %v", ctx.Err())
	}
	return func() { _ = s.fl.Unlock() }, nil
}
