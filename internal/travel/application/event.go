package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type travelCreatedEvent struct {
	data string
}

func (e travelCreatedEvent) EventName() string {
	return "TravelCreated"
}

func (e travelCreatedEvent) Payload() string {
	return e.data
}

func NewTravelCreatedEvent(data string) domain.Event[string] {
	return travelCreatedEvent{data: data}
}
