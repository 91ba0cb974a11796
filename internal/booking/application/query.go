package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type FindPassengersData struct{}

type findPassengersQuery struct {
	data FindPassengersData
}

func (q findPassengersQuery) QueryName() string {
	return "FindPassengers"
}

func (q findPassengersQuery) Payload() FindPassengersData {
	return q.data
}

func NewFindPassengersQuery() domain.Query[FindPassengersData] {
	return findPassengersQuery{}
}

type FindPassengerByIDData struct {
	ID int64 `json:"id"`
}

type findPassengerByIDQuery struct {
	data FindPassengerByIDData
}

func (q findPassengerByIDQuery) QueryName() string {
	return "FindPassengerByID"
}

func (q findPassengerByIDQuery) Payload() FindPassengerByIDData {
	return q.data
}

func NewFindPassengerByIDQuery(data FindPassengerByIDData) domain.Query[FindPassengerByIDData] {
	return findPassengerByIDQuery{data: data}
}

type FindPassengerByDocumentData struct {
	Document string `json:"document"`
}

type findPassengerByDocumentQuery struct {
	data FindPassengerByDocumentData
}

func (q findPassengerByDocumentQuery) QueryName() string {
	return "FindPassengerByDocument"
}

func (q findPassengerByDocumentQuery) Payload() FindPassengerByDocumentData {
	return q.data
}

func NewFindPassengerByDocumentQuery(data FindPassengerByDocumentData) domain.Query[FindPassengerByDocumentData] {
	return findPassengerByDocumentQuery{data: data}
}
