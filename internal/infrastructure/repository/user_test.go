package repository

import (
	"context"
	"testing"

	"github.com/hilthontt/devops-sample/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository()

	users, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.User{
		{ID: 1, Name: "John Doe"},
		{ID: 2, Name: "Jane Smith"},
		{ID: 3, Name: "Bob Johnson"},
	}, users)
}

func TestUserRepository_ListReturnsCopy(t *testing.T) {
	repo := NewUserRepository()

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "Mallory"

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", second[0].Name)
}

func TestUserRepository_ListCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	users, err := NewUserRepository().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, users)
}
