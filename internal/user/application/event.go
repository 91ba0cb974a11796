package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type userCreatedEvent struct {
	data string
}

func (e userCreatedEvent) EventName() string {
	return "UserCreated"
}

func (e userCreatedEvent) Payload() string {
	return e.data
}

func NewUserCreatedEvent(data string) domain.Event[string] {
	return userCreatedEvent{data: data}
}
