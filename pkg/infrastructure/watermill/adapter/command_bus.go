package adapter

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/mmacedo-dev/bustrip/pkg/application"
	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

// WatermillCommandBus dispatches commands over a watermill publisher and
// executes them from the matching subscription. The transport (GoChannel,
// Kafka, Redis Streams) is whatever publisher/subscriber pair is injected.
type WatermillCommandBus[C domain.Command[T], T any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	handlers   map[string]application.CommandHandler[C, T]
	mu         sync.RWMutex
	logger     application.AppLogger
}

func NewWatermillCommandBus[C domain.Command[T], T any](publisher message.Publisher, subscriber message.Subscriber, logger application.AppLogger) *WatermillCommandBus[C, T] {
	return &WatermillCommandBus[C, T]{
		publisher:  publisher,
		subscriber: subscriber,
		handlers:   make(map[string]application.CommandHandler[C, T]),
		logger:     logger,
	}
}

func (bus *WatermillCommandBus[C, T]) RegisterHandler(commandName string, handler application.CommandHandler[C, T]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler

	go func() {
		ctx := context.Background()
		messages, err := bus.subscriber.Subscribe(ctx, commandName)
		if err != nil {
			application.LogError(ctx, bus.logger, "error subscribing to command topic", err, map[string]interface{}{
				"command_name": commandName,
			})
			return
		}

		for msg := range messages {
			go bus.consume(commandName, handler, msg)
		}
	}()
}

func (bus *WatermillCommandBus[C, T]) consume(commandName string, handler application.CommandHandler[C, T], msg *message.Message) {
	ctx := msg.Context()

	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling command payload", err, map[string]interface{}{
			"command_name": commandName,
		})
		msg.Nack()
		return
	}

	command := &dynamicCommand[T]{commandName: commandName, payload: payload}
	typedCommand, ok := interface{}(command).(C)
	if !ok {
		bus.logger.Error(ctx, "error asserting command type", map[string]interface{}{
			"command_name": commandName,
		})
		msg.Nack()
		return
	}

	if err := handler.Handle(ctx, typedCommand); err != nil {
		application.LogError(ctx, bus.logger, "error handling command", err, map[string]interface{}{
			"command_name": commandName,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (bus *WatermillCommandBus[C, T]) Dispatch(ctx context.Context, command C) error {
	payload, err := json.Marshal(command.Payload())
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return bus.publisher.Publish(command.CommandName(), msg)
}

// dynamicCommand reconstructs the Command interface on the consuming side.
type dynamicCommand[T any] struct {
	commandName string
	payload     T
}

func (c *dynamicCommand[T]) CommandName() string {
	return c.commandName
}

func (c *dynamicCommand[T]) Payload() T {
	return c.payload
}
