package domain

// Event notifies that something happened in a slice.
type Event[T any] interface {
	EventName() string
	Payload() T
}
