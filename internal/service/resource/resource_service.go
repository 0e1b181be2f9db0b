package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/kafka"
	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/Domenick1991/airportservice/internal/repository"
)

// UseCase is the CRUD surface every resource endpoint talks to.
type UseCase[E domain.Entity, In any] interface {
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, in In) (*E, error)
	Update(ctx context.Context, id int64, in In) (*E, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetList(ctx context.Context, resource string, dst any) (bool, error)
	SetList(ctx context.Context, resource string, value any) error
	InvalidateLists(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic string, event kafka.EntityEvent) error
}

type deps struct {
	cache    Cache
	producer Producer
	topic    string
	log      *logger.Logger
	now      func() time.Time
}

type Option func(*deps)

func WithCache(cache Cache) Option {
	return func(d *deps) {
		d.cache = cache
	}
}

func WithEvents(producer Producer, topic string) Option {
	return func(d *deps) {
		d.producer = producer
		d.topic = topic
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(d *deps) {
		d.log = log
	}
}

// Service wraps a repository with a cache-aside list and change events.
type Service[E domain.Entity, In any] struct {
	name string
	repo repository.Repository[E, In]
	deps
}

func NewService[E domain.Entity, In any](name string, repo repository.Repository[E, In], opts ...Option) *Service[E, In] {
	s := &Service[E, In]{name: name, repo: repo}
	s.now = time.Now
	for _, opt := range opts {
		opt(&s.deps)
	}
	if s.log == nil {
		s.log = logger.NewLogger()
	}
	return s
}

func (s *Service[E, In]) Name() string { return s.name }

func (s *Service[E, In]) List(ctx context.Context) ([]E, error) {
	if s.cache != nil {
		var cached []E
		hit, err := s.cache.GetList(ctx, s.name, &cached)
		if err != nil {
			s.log.Warn("cache", fmt.Sprintf("read %s list: %v", s.name, err))
		} else if hit {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	if s.cache != nil {
		if err := s.cache.SetList(ctx, s.name, items); err != nil {
			s.log.Warn("cache", fmt.Sprintf("store %s list: %v", s.name, err))
		}
	}
	return items, nil
}

func (s *Service[E, In]) Get(ctx context.Context, id int64) (*E, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service[E, In]) Create(ctx context.Context, in In) (*E, error) {
	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, kafka.EventCreated, (*created).EntityID(), created)
	return created, nil
}

func (s *Service[E, In]) Update(ctx context.Context, id int64, in In) (*E, error) {
	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, kafka.EventUpdated, id, updated)
	return updated, nil
}

func (s *Service[E, In]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, kafka.EventDeleted, id, nil)
	return nil
}

// Notify runs the post-write steps for writes made outside the repository contract.
func (s *Service[E, In]) Notify(ctx context.Context, eventType string, id int64, entity *E) {
	s.afterWrite(ctx, eventType, id, entity)
}

func (s *Service[E, In]) afterWrite(ctx context.Context, eventType string, id int64, entity *E) {
	if s.cache != nil {
		if err := s.cache.InvalidateLists(ctx); err != nil {
			s.log.Warn("cache", fmt.Sprintf("invalidate after %s.%s: %v", s.name, eventType, err))
		}
	}
	if s.producer == nil {
		return
	}

	event := kafka.EntityEvent{Type: eventType, Resource: s.name, ID: id, OccurredAt: s.now().UTC()}
	if entity != nil {
		payload, err := json.Marshal(entity)
		if err != nil {
			s.log.Warn("kafka", fmt.Sprintf("marshal %s %d: %v", s.name, id, err))
		}
		event.Payload = payload
	}
	if err := s.producer.Publish(ctx, s.topic, event); err != nil {
		s.log.Warn("kafka", fmt.Sprintf("failed to publish %s.%s for id %d: %v", s.name, eventType, id, err))
	}
}

var _ UseCase[domain.Airport, domain.AirportInput] = (*Service[domain.Airport, domain.AirportInput])(nil)
