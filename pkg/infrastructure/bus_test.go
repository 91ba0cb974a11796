package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmacedo-dev/bustrip/pkg/domain"
)

type pingCommand struct{ data string }

func (c pingCommand) CommandName() string { return "Ping" }
func (c pingCommand) Payload() string     { return c.data }

type pingHandler struct {
	got string
	err error
}

func (h *pingHandler) Handle(_ context.Context, command domain.Command[string]) error {
	h.got = command.Payload()
	return h.err
}

func TestSimpleCommandBus_Dispatch(t *testing.T) {
	bus := NewSimpleCommandBus[domain.Command[string], string]()
	handler := &pingHandler{}
	bus.RegisterHandler("Ping", handler)

	err := bus.Dispatch(context.Background(), pingCommand{data: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "hello", handler.got)
}

func TestSimpleCommandBus_NoHandler(t *testing.T) {
	bus := NewSimpleCommandBus[domain.Command[string], string]()

	err := bus.Dispatch(context.Background(), pingCommand{data: "hello"})

	assert.ErrorContains(t, err, `no handler registered for command "Ping"`)
}

type echoQuery struct{ data string }

func (q echoQuery) QueryName() string { return "Echo" }
func (q echoQuery) Payload() string   { return q.data }

type echoQueryHandler struct{}

func (echoQueryHandler) Handle(_ context.Context, query domain.Query[string]) (string, error) {
	return query.Payload() + "!", nil
}

func TestSimpleQueryBus_Dispatch(t *testing.T) {
	bus := NewSimpleQueryBus[domain.Query[string], string, string]()
	bus.RegisterHandler("Echo", echoQueryHandler{})

	result, err := bus.Dispatch(context.Background(), echoQuery{data: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "hi!", result)
}

func TestSimpleQueryBus_CancelledContext(t *testing.T) {
	bus := NewSimpleQueryBus[domain.Query[string], string, string]()
	bus.RegisterHandler("Echo", echoQueryHandler{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bus.Dispatch(ctx, echoQuery{data: "hi"})

	assert.ErrorIs(t, err, context.Canceled)
}

type noteEvent struct{ data string }

func (e noteEvent) EventName() string { return "Note" }
func (e noteEvent) Payload() string   { return e.data }

type noteEventHandler struct {
	calls chan string
	err   error
}

func (h *noteEventHandler) Handle(_ context.Context, event domain.Event[string]) error {
	h.calls <- event.Payload()
	return h.err
}

func TestSimpleEventBus_FanOut(t *testing.T) {
	bus := NewSimpleEventBus[domain.Event[string], string](nopLogger{})
	first := &noteEventHandler{calls: make(chan string, 1)}
	second := &noteEventHandler{calls: make(chan string, 1)}
	bus.RegisterHandler("Note", first)
	bus.RegisterHandler("Note", second)

	err := bus.Publish(context.Background(), noteEvent{data: "booked"})

	require.NoError(t, err)
	assert.Equal(t, "booked", <-first.calls)
	assert.Equal(t, "booked", <-second.calls)
}

func TestSimpleEventBus_HandlerError(t *testing.T) {
	bus := NewSimpleEventBus[domain.Event[string], string](nopLogger{})
	failing := &noteEventHandler{calls: make(chan string, 1), err: errors.New("boom")}
	bus.RegisterHandler("Note", failing)

	err := bus.Publish(context.Background(), noteEvent{data: "booked"})

	assert.ErrorContains(t, err, "publishing Note")
}

func TestSimpleEventBus_NoSubscribersIsSuccess(t *testing.T) {
	bus := NewSimpleEventBus[domain.Event[string], string](nopLogger{})

	assert.NoError(t, bus.Publish(context.Background(), noteEvent{data: "ignored"}))
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}
