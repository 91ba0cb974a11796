package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type passengerBookedEvent struct {
	data string
}

func (e passengerBookedEvent) EventName() string {
	return "PassengerBooked"
}

func (e passengerBookedEvent) Payload() string {
	return e.data
}

func NewPassengerBookedEvent(data string) domain.Event[string] {
	return passengerBookedEvent{data: data}
}

type bookingCancelledEvent struct {
	data string
}

func (e bookingCancelledEvent) EventName() string {
	return "BookingCancelled"
}

func (e bookingCancelledEvent) Payload() string {
	return e.data
}

func NewBookingCancelledEvent(data string) domain.Event[string] {
	return bookingCancelledEvent{data: data}
}
