package application

import (
	"context"

	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// CommandHandler executes a single command type.
type CommandHandler[C domain.Command[T], T any] interface {
	Handle(ctx context.Context, command C) error
}

// CommandBus routes commands to their registered handler.
type CommandBus[C domain.Command[T], T any] interface {
	RegisterHandler(commandName string, handler CommandHandler[C, T])
	Dispatch(ctx context.Context, command C) error
}
