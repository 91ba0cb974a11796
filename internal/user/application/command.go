package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// CreateUserData registers an account. The password arrives in plain text
// and is hashed before it touches storage.
type CreateUserData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CPF       string `json:"cpf"`
	Telephone string `json:"telephone"`
	IsAdmin   bool   `json:"isAdmin"`
}

type createUserCommand struct {
	data CreateUserData
}

func (c createUserCommand) CommandName() string {
	return "CreateUser"
}

func (c createUserCommand) Payload() CreateUserData {
	return c.data
}

func NewCreateUserCommand(data CreateUserData) domain.Command[CreateUserData] {
	return createUserCommand{data: data}
}

type UpdateTelephoneData struct {
	ID        int64  `json:"id"`
	Telephone string `json:"telephone"`
}

type updateTelephoneCommand struct {
	data UpdateTelephoneData
}

func (c updateTelephoneCommand) CommandName() string {
	return "UpdateTelephone"
}

func (c updateTelephoneCommand) Payload() UpdateTelephoneData {
	return c.data
}

func NewUpdateTelephoneCommand(data UpdateTelephoneData) domain.Command[UpdateTelephoneData] {
	return updateTelephoneCommand{data: data}
}

type UpdatePasswordData struct {
	ID          int64  `json:"id"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type updatePasswordCommand struct {
	data UpdatePasswordData
}

func (c updatePasswordCommand) CommandName() string {
	return "UpdatePassword"
}

func (c updatePasswordCommand) Payload() UpdatePasswordData {
	return c.data
}

func NewUpdatePasswordCommand(data UpdatePasswordData) domain.Command[UpdatePasswordData] {
	return updatePasswordCommand{data: data}
}

type DeleteUserData struct {
	ID int64 `json:"id"`
}

type deleteUserCommand struct {
	data DeleteUserData
}

func (c deleteUserCommand) CommandName() string {
	return "DeleteUser"
}

func (c deleteUserCommand) Payload() DeleteUserData {
	return c.data
}

func NewDeleteUserCommand(data DeleteUserData) domain.Command[DeleteUserData] {
	return deleteUserCommand{data: data}
}
