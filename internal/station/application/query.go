package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type FindBusStationsData struct{}

type findBusStationsQuery struct {
	data FindBusStationsData
}

func (q findBusStationsQuery) QueryName() string {
	return "FindBusStations"
}

func (q findBusStationsQuery) Payload() FindBusStationsData {
	return q.data
}

func NewFindBusStationsQuery() domain.Query[FindBusStationsData] {
	return findBusStationsQuery{}
}

type FindBusStationByIDData struct {
	ID int64 `json:"id"`
}

type findBusStationByIDQuery struct {
	data FindBusStationByIDData
}

func (q findBusStationByIDQuery) QueryName() string {
	return "FindBusStationByID"
}

func (q findBusStationByIDQuery) Payload() FindBusStationByIDData {
	return q.data
}

func NewFindBusStationByIDQuery(data FindBusStationByIDData) domain.Query[FindBusStationByIDData] {
	return findBusStationByIDQuery{data: data}
}

type FindBusStationsByCityData struct {
	City string `json:"city"`
}

type findBusStationsByCityQuery struct {
	data FindBusStationsByCityData
}

func (q findBusStationsByCityQuery) QueryName() string {
	return "FindBusStationsByCity"
}

func (q findBusStationsByCityQuery) Payload() FindBusStationsByCityData {
	return q.data
}

func NewFindBusStationsByCityQuery(data FindBusStationsByCityData) domain.Query[FindBusStationsByCityData] {
	return findBusStationsByCityQuery{data: data}
}
