package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// CreateBusStationData carries the registration request for a station.
type CreateBusStationData struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	StateCode string `json:"stateCode"`
}

type createBusStationCommand struct {
	data CreateBusStationData
}

func (c createBusStationCommand) CommandName() string {
	return "CreateBusStation"
}

func (c createBusStationCommand) Payload() CreateBusStationData {
	return c.data
}

func NewCreateBusStationCommand(data CreateBusStationData) domain.Command[CreateBusStationData] {
	return createBusStationCommand{data: data}
}

type DeleteBusStationData struct {
	ID int64 `json:"id"`
}

type deleteBusStationCommand struct {
	data DeleteBusStationData
}

func (c deleteBusStationCommand) CommandName() string {
	return "DeleteBusStation"
}

func (c deleteBusStationCommand) Payload() DeleteBusStationData {
	return c.data
}

func NewDeleteBusStationCommand(data DeleteBusStationData) domain.Command[DeleteBusStationData] {
	return deleteBusStationCommand{data: data}
}
