package domain

import "context"

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
}
