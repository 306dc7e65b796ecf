package repository

import "github.com/jhoicas/stockswift-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail devuelve nil, nil si el email no existe.
	FindByEmail(email string) (*entity.User, error)
}
