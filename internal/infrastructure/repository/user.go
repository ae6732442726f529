package repository

import (
	"context"

	"github.com/hilthontt/devops-sample/internal/domain"
)

var sampleUsers = []domain.User{
	{ID: 1, Name: "John Doe"},
	{ID: 2, Name: "Jane Smith"},
	{ID: 3, Name: "Bob Johnson"},
}

// userRepository serves a fixed, read-only set of users.
type userRepository struct {
	users []domain.User
}

func NewUserRepository() domain.UserRepository {
	return &userRepository{users: sampleUsers}
}

// List returns a copy so callers cannot alter the fixed set.
func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
