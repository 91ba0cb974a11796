package application

import (
	"time"

	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type FindTravelsData struct{}

type findTravelsQuery struct {
	data FindTravelsData
}

func (q findTravelsQuery) QueryName() string {
	return "FindTravels"
}

func (q findTravelsQuery) Payload() FindTravelsData {
	return q.data
}

func NewFindTravelsQuery() domain.Query[FindTravelsData] {
	return findTravelsQuery{}
}

type FindTravelByIDData struct {
	ID int64 `json:"id"`
}

type findTravelByIDQuery struct {
	data FindTravelByIDData
}

func (q findTravelByIDQuery) QueryName() string {
	return "FindTravelByID"
}

func (q findTravelByIDQuery) Payload() FindTravelByIDData {
	return q.data
}

func NewFindTravelByIDQuery(data FindTravelByIDData) domain.Query[FindTravelByIDData] {
	return findTravelByIDQuery{data: data}
}

// SearchTravelsData filters listings by origin, destination or departure day.
// Empty fields are not applied.
type SearchTravelsData struct {
	OriginCity      string    `json:"originCity"`
	DestinationCity string    `json:"destinationCity"`
	DepartureDate   time.Time `json:"departureDate"`
}

type searchTravelsQuery struct {
	data SearchTravelsData
}

func (q searchTravelsQuery) QueryName() string {
	return "SearchTravels"
}

func (q searchTravelsQuery) Payload() SearchTravelsData {
	return q.data
}

func NewSearchTravelsQuery(data SearchTravelsData) domain.Query[SearchTravelsData] {
	return searchTravelsQuery{data: data}
}
