package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// CreateUserInput carries the fields a caller may supply when creating an
// account. Any client-chosen id is deliberately absent: a new identity is
// always allocated at creation. Roles is only populated on the admin path;
// self-registration leaves it empty and gets the default USER role.
type CreateUserInput struct {
	Username  string
	Password  string // plaintext, hashed before it ever reaches a repository
	FirstName string
	LastName  string
	Roles     []string
}

// UserService covers account CRUD. Register is the self-service path and
// always assigns the default USER role; Update performs no username
// uniqueness re-check and DeleteByID does not cascade to orders; both are
// known limitations carried over deliberately.
type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	DeleteByID(ctx context.Context, id string) error
}
