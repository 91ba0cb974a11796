package application

import (
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// CreatePassengerData books one seat on a travel for the given user.
type CreatePassengerData struct {
	Name          string `json:"name"`
	Document      string `json:"document"`
	SeatNumber    int    `json:"seatNumber"`
	PaymentMethod string `json:"paymentMethod"`
	TravelID      int64  `json:"travelId"`
	UserID        int64  `json:"userId"`
}

type createPassengerCommand struct {
	data CreatePassengerData
}

func (c createPassengerCommand) CommandName() string {
	return "CreatePassenger"
}

func (c createPassengerCommand) Payload() CreatePassengerData {
	return c.data
}

func NewCreatePassengerCommand(data CreatePassengerData) domain.Command[CreatePassengerData] {
	return createPassengerCommand{data: data}
}

// CancelBookingData identifies the passenger record being cancelled.
type CancelBookingData struct {
	ID int64 `json:"id"`
}

type cancelBookingCommand struct {
	data CancelBookingData
}

func (c cancelBookingCommand) CommandName() string {
	return "CancelBooking"
}

func (c cancelBookingCommand) Payload() CancelBookingData {
	return c.data
}

func NewCancelBookingCommand(data CancelBookingData) domain.Command[CancelBookingData] {
	return cancelBookingCommand{data: data}
}
