package domain

// Query is a read-only request against the system.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
