package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// LoginData exchanges credentials for a signed session token.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginQuery struct {
	data LoginData
}

func (q loginQuery) QueryName() string {
	return "Login"
}

func (q loginQuery) Payload() LoginData {
	return q.data
}

func NewLoginQuery(data LoginData) domain.Query[LoginData] {
	return loginQuery{data: data}
}

// Session is the login result handed back to the client.
type Session struct {
	Token string `json:"token"`
}

type FindUsersData struct{}

type findUsersQuery struct {
	data FindUsersData
}

func (q findUsersQuery) QueryName() string {
	return "FindUsers"
}

func (q findUsersQuery) Payload() FindUsersData {
	return q.data
}

func NewFindUsersQuery() domain.Query[FindUsersData] {
	return findUsersQuery{}
}

type FindUserByIDData struct {
	ID int64 `json:"id"`
}

type findUserByIDQuery struct {
	data FindUserByIDData
}

func (q findUserByIDQuery) QueryName() string {
	return "FindUserByID"
}

func (q findUserByIDQuery) Payload() FindUserByIDData {
	return q.data
}

func NewFindUserByIDQuery(data FindUserByIDData) domain.Query[FindUserByIDData] {
	return findUserByIDQuery{data: data}
}
