package domain

import (
	"context"
)

type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	CPF          string `json:"cpf" gorm:"column:cpf;uniqueIndex"`
	Telephone    string `json:"telephone" gorm:"uniqueIndex"`
	IsAdmin      bool   `json:"isAdmin"`
}

type UserRepository interface {
	Save(ctx context.Context, user User) (User, error)

	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByCPF(ctx context.Context, cpf string) (User, error)
	FindByTelephone(ctx context.Context, telephone string) (User, error)

	UpdateTelephone(ctx context.Context, id int64, telephone string) (User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
