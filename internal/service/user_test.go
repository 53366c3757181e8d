package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/userctl/internal/domain/repository"
	storefs "github.com/dropDatabas3/userctl/internal/store/fs"
)

func newTestService(t *testing.T) (*UserService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "userdata.json")
	return NewUserService(storefs.New(path)), path
}

func johnInput() repository.CreateUserInput {
	return repository.CreateUserInput{
		Email:    "john@example.com",
		Username: "johndoe",
		Phone:    "1234567890",
		Age:      25,
	}
}

func TestCreate_Success(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, johnInput())
	require.NoError(t, err)
	require.Equal(t, "john@example.com", u.Email)
	require.Equal(t, "johndoe", u.Username)

	// Durabilidad: una instancia nueva sobre el mismo archivo ve el registro.
	other := NewUserService(storefs.New(path))
	got, err := other.Get(ctx, "john@example.com")
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestCreate_Duplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, johnInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, johnInput())
	require.ErrorIs(t, err, repository.ErrUserAlreadyExists)
	require.EqualError(t, err, `UserAlreadyExists("User with email john@example.com already exists")`)

	// El duplicado no pisa el registro original.
	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestCreate_ValidationBeforeIO(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		in       repository.CreateUserInput
		sentinel error
	}{
		{"bad email", repository.CreateUserInput{Email: "not-an-email", Username: "johndoe", Phone: "1234567890", Age: 25}, repository.ErrInvalidEmail},
		{"short username", repository.CreateUserInput{Email: "a@example.com", Username: "ab", Phone: "1234567890", Age: 25}, repository.ErrInvalidUsername},
		{"short phone", repository.CreateUserInput{Email: "a@example.com", Username: "johndoe", Phone: "123456789", Age: 25}, repository.ErrInvalidPhone},
		{"age out of range", repository.CreateUserInput{Email: "a@example.com", Username: "johndoe", Phone: "1234567890", Age: 151}, repository.ErrInvalidAge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(ctx, c.in)
			require.ErrorIs(t, err, c.sentinel)
		})
	}

	// Ninguna falla de validación llegó a escribir el archivo.
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "validation failure must not touch the store")
}

func TestUpdate_Success(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, johnInput())
	require.NoError(t, err)

	u, err := svc.Update(ctx, repository.UpdateUserInput{
		Email:    "john@example.com",
		Username: "newname",
		Phone:    "0987654321",
		Age:      30,
	})
	require.NoError(t, err)
	require.Equal(t, "john@example.com", u.Email, "key never changes")
	require.Equal(t, "newname", u.Username)
	require.Equal(t, 30, u.Age)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, u, users[0])
}

func TestUpdate_NotFound(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, repository.UpdateUserInput{
		Email:    "ghost@example.com",
		Username: "ghostly",
		Phone:    "1234567890",
		Age:      40,
	})
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	// El store queda intacto: nada se escribió.
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
	require.EqualError(t, err, `UserNotFound("User with email nobody@example.com not found")`)
}

func TestDelete_ThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, johnInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "john@example.com"))

	_, err = svc.Get(ctx, "john@example.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestList_EmptyAndSorted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, users, "empty set lists as empty, not as an error")

	for _, in := range []repository.CreateUserInput{
		{Email: "charlie@example.com", Username: "charlie", Phone: "3333333333", Age: 33},
		{Email: "alice@example.com", Username: "alice", Phone: "1111111111", Age: 31},
		{Email: "bob@example.com", Username: "bob123", Phone: "2222222222", Age: 32},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	users, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "alice@example.com", users[0].Email)
	require.Equal(t, "bob@example.com", users[1].Email)
	require.Equal(t, "charlie@example.com", users[2].Email)
}

func TestList_DoesNotWrite(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, johnInput())
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.Get(ctx, "john@example.com")
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after, "read-only operations must not rewrite the file")
}

func TestUniqueness_AcrossOperations(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, johnInput())
	require.NoError(t, err)
	_, err = svc.Create(ctx, johnInput())
	require.Error(t, err)
	_, err = svc.Update(ctx, repository.UpdateUserInput{
		Email: "john@example.com", Username: "renamed", Phone: "5555555555", Age: 50,
	})
	require.NoError(t, err)

	users, err := svc.List(ctx)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, u := range users {
		require.False(t, seen[u.Email], "duplicate email in record set: %s", u.Email)
		seen[u.Email] = true
	}
	require.Len(t, users, 1)
}

func TestLoadError_Propagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0644))
	svc := NewUserService(storefs.New(path))

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, repository.ErrParse)

	var derr *repository.Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, repository.KindParseError, derr.Kind)
}
