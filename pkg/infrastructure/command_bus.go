package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmacedo-dev/bustrip/pkg/application"
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type simpleCommandBus[C domain.Command[D], D any] struct {
	handlers map[string]application.CommandHandler[C, D]
	mu       sync.RWMutex
}

// NewSimpleCommandBus builds an in-process command bus backed by a handler map.
func NewSimpleCommandBus[C domain.Command[D], D any]() application.CommandBus[C, D] {
	return &simpleCommandBus[C, D]{
		handlers: make(map[string]application.CommandHandler[C, D]),
	}
}

func (bus *simpleCommandBus[C, D]) RegisterHandler(commandName string, handler application.CommandHandler[C, D]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler
}

func (bus *simpleCommandBus[C, D]) Dispatch(ctx context.Context, command C) error {
	bus.mu.RLock()
	handler, found := bus.handlers[command.CommandName()]
	bus.mu.RUnlock()

	if !found {
		return fmt.Errorf("no handler registered for command %q", command.CommandName())
	}

	return handler.Handle(ctx, command)
}
