package repository

import "github.com/vendapp/pedidos-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (autenticação).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
