package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type busStationCreatedEvent struct {
	data string
}

func (e busStationCreatedEvent) EventName() string {
	return "BusStationCreated"
}

func (e busStationCreatedEvent) Payload() string {
	return e.data
}

func NewBusStationCreatedEvent(data string) domain.Event[string] {
	return busStationCreatedEvent{data: data}
}
