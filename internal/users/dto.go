package users

import (
	"github.com/dcarvalho/shopline-backend/pkg/db/models"
)

// CreateUserDTO holds the data required by the repo to persist a new user.
// The password hash never leaves this package's callers; the transport shape
// only ever echoes the username.
type CreateUserDTO struct {
	Username       string
	HashedPassword string
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Username:       c.Username,
		HashedPassword: c.HashedPassword,
	}
}
