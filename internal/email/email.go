package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/kafka"
	"github.com/Domenick1991/airportservice/internal/logger"
)

// Sender writes notifications to the log; there is no SMTP relay yet.
type Sender struct {
	log *logger.Logger
}

func NewSender(log *logger.Logger) *Sender {
	if log == nil {
		log = logger.NewLogger()
	}
	return &Sender{log: log}
}

func (s *Sender) SendOrderConfirmation(ctx context.Context, order domain.Order) error {
	if order.CustomerEmail == "" {
		return fmt.Errorf("order %d has no customer email", order.ID)
	}
	s.log.Info("email", fmt.Sprintf("send email to %s about order #%d (%s)", order.CustomerEmail, order.ID, order))
	return nil
}

// Handle reacts to change events; only new orders produce a message.
func (s *Sender) Handle(ctx context.Context, event kafka.EntityEvent) error {
	if event.Resource != "orders" || event.Type != kafka.EventCreated {
		s.log.Debug("email", fmt.Sprintf("skip %s.%s id=%d", event.Resource, event.Type, event.ID))
		return nil
	}

	var order domain.Order
	if err := json.Unmarshal(event.Payload, &order); err != nil {
		s.log.Warn("email", fmt.Sprintf("decode order %d: %v", event.ID, err))
		return nil
	}
	return s.SendOrderConfirmation(ctx, order)
}
