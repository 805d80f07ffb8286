package relational

import (
	"context"
	"testing"

	"botauth/internal/domain/entity"
	domainerrors "botauth/internal/domain/errors"
	"botauth/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := entity.NewUser(entity.ExternalUser{ID: 100200300, FirstName: "Alice"})
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, 100200300)
	require.NoError(t, err)
	assert.Equal(t, int64(100200300), found.ID)
	assert.Equal(t, "Alice", found.FirstName)
	assert.False(t, found.IsSuperuser)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByID(context.Background(), 42)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{ID: 7, FirstName: "Bob"}))

	err := repo.Create(ctx, &entity.User{ID: 7, FirstName: "Bob again"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{ID: 9, FirstName: "Carol"}
	require.NoError(t, repo.Create(ctx, user))

	user.IsSuperuser = true
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, 9)
	require.NoError(t, err)
	assert.True(t, found.IsSuperuser)

	user.IsSuperuser = false
	require.NoError(t, repo.Update(ctx, user))

	found, err = repo.FindByID(ctx, 9)
	require.NoError(t, err)
	assert.False(t, found.IsSuperuser)
}

func TestUserRepository_Update_Missing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.Update(context.Background(), &entity.User{ID: 404, IsSuperuser: true})
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}
