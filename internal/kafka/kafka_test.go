package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	at := time.Date(2024, 9, 30, 19, 23, 45, 0, time.UTC)
	value, err := json.Marshal(EntityEvent{Type: EventCreated, Resource: "orders", ID: 3, Payload: json.RawMessage(`{"id":3}`), OccurredAt: at})
	require.NoError(t, err)

	event, err := DecodeEvent(kafka.Message{Value: value})

	require.NoError(t, err)
	assert.Equal(t, EventCreated, event.Type)
	assert.Equal(t, "orders", event.Resource)
	assert.Equal(t, int64(3), event.ID)
	assert.JSONEq(t, `{"id":3}`, string(event.Payload))
	assert.True(t, at.Equal(event.OccurredAt))
}

func TestDecodeEvent_Malformed(t *testing.T) {
	_, err := DecodeEvent(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}

func TestProducer_CheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil, logger.NewLogger())
	defer p.Close()

	assert.Error(t, p.CheckConnection(context.Background()))
}
