package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// CreateTravelData carries the schedule-admission request.
type CreateTravelData struct {
	DepartureTime      time.Time       `json:"departureTime"`
	SeatClass          string          `json:"seatClass"`
	Price              decimal.Decimal `json:"price"`
	DepartureStationID int64           `json:"departureStationId"`
	ArrivalStationID   int64           `json:"arrivalStationId"`
}

type createTravelCommand struct {
	data CreateTravelData
}

func (c createTravelCommand) CommandName() string {
	return "CreateTravel"
}

func (c createTravelCommand) Payload() CreateTravelData {
	return c.data
}

func NewCreateTravelCommand(data CreateTravelData) domain.Command[CreateTravelData] {
	return createTravelCommand{data: data}
}

type DeleteTravelData struct {
	ID int64 `json:"id"`
}

type deleteTravelCommand struct {
	data DeleteTravelData
}

func (c deleteTravelCommand) CommandName() string {
	return "DeleteTravel"
}

func (c deleteTravelCommand) Payload() DeleteTravelData {
	return c.data
}

func NewDeleteTravelCommand(data DeleteTravelData) domain.Command[DeleteTravelData] {
	return deleteTravelCommand{data: data}
}
