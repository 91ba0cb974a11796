package domain

// Command is a request to change the state of the system.
type Command[T any] interface {
	CommandName() string
	Payload() T
}
