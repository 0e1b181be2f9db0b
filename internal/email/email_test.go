package email

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/kafka"
	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_HandleOrderCreated(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender(logger.New(&buf, logger.LevelDebug))

	order := domain.Order{ID: 7, CreatedAt: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC), UserID: 9, CustomerEmail: "testuser@example.com"}
	payload, err := json.Marshal(order)
	require.NoError(t, err)

	err = s.Handle(context.Background(), kafka.EntityEvent{Type: kafka.EventCreated, Resource: "orders", ID: 7, Payload: payload})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "send email to testuser@example.com about order #7")
}

func TestSender_HandleSkipsOtherEvents(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender(logger.New(&buf, logger.LevelInfo))

	err := s.Handle(context.Background(), kafka.EntityEvent{Type: kafka.EventDeleted, Resource: "orders", ID: 7})
	assert.NoError(t, err)

	err = s.Handle(context.Background(), kafka.EntityEvent{Type: kafka.EventCreated, Resource: "tickets", ID: 1})
	assert.NoError(t, err)

	assert.NotContains(t, buf.String(), "send email")
}

func TestSender_HandleBadPayload(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender(logger.New(&buf, logger.LevelDebug))

	err := s.Handle(context.Background(), kafka.EntityEvent{Type: kafka.EventCreated, Resource: "orders", ID: 7, Payload: []byte("{")})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "decode order 7")
}

func TestSender_RequiresEmail(t *testing.T) {
	s := NewSender(logger.New(&bytes.Buffer{}, logger.LevelInfo))

	assert.Error(t, s.SendOrderConfirmation(context.Background(), domain.Order{ID: 1}))
}
