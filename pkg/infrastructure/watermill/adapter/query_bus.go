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

// WatermillQueryBus publishes a query on its topic and waits for the handler's
// reply on "<query>_response".
type WatermillQueryBus[Q domain.Query[D], D any, R any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	handlers   map[string]application.QueryHandler[Q, D, R]
	mu         sync.RWMutex
	logger     application.AppLogger
}

func NewWatermillQueryBus[Q domain.Query[D], D any, R any](publisher message.Publisher, subscriber message.Subscriber, logger application.AppLogger) *WatermillQueryBus[Q, D, R] {
	return &WatermillQueryBus[Q, D, R]{
		publisher:  publisher,
		subscriber: subscriber,
		handlers:   make(map[string]application.QueryHandler[Q, D, R]),
		logger:     logger,
	}
}

func (bus *WatermillQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[queryName] = handler

	go func() {
		ctx := context.Background()
		messages, err := bus.subscriber.Subscribe(ctx, queryName)
		if err != nil {
			application.LogError(ctx, bus.logger, "error subscribing to query topic", err, map[string]interface{}{
				"query_name": queryName,
			})
			return
		}

		for msg := range messages {
			go bus.consume(queryName, handler, msg)
		}
	}()
}

func (bus *WatermillQueryBus[Q, D, R]) consume(queryName string, handler application.QueryHandler[Q, D, R], msg *message.Message) {
	ctx := msg.Context()

	var payload D
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling query payload", err, map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	query := &dynamicQuery[D]{queryName: queryName, payload: payload}
	typedQuery, ok := interface{}(query).(Q)
	if !ok {
		bus.logger.Error(ctx, "error asserting query type", map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	result, err := handler.Handle(ctx, typedQuery)
	if err != nil {
		application.LogError(ctx, bus.logger, "error handling query", err, map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	responsePayload, err := json.Marshal(result)
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling query result", err, map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	responseMsg := message.NewMessage(watermill.NewUUID(), responsePayload)
	if err := bus.publisher.Publish(queryName+"_response", responseMsg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing query response", err, map[string]interface{}{
			"query_name": queryName,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (bus *WatermillQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	var zero R

	payload, err := json.Marshal(query.Payload())
	if err != nil {
		return zero, err
	}

	// Subscribe to the response topic before publishing so the reply is not
	// missed on fast in-memory transports.
	responseMessages, err := bus.subscriber.Subscribe(ctx, query.QueryName()+"_response")
	if err != nil {
		return zero, err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := bus.publisher.Publish(query.QueryName(), msg); err != nil {
		return zero, err
	}

	select {
	case responseMsg := <-responseMessages:
		var result R
		if err := json.Unmarshal(responseMsg.Payload, &result); err != nil {
			return zero, err
		}
		responseMsg.Ack()
		return result, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

type dynamicQuery[D any] struct {
	queryName string
	payload   D
}

func (q *dynamicQuery[D]) QueryName() string {
	return q.queryName
}

func (q *dynamicQuery[D]) Payload() D {
	return q.payload
}
