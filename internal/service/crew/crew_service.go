package crew

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/kafka"
	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/Domenick1991/airportservice/internal/media"
	"github.com/Domenick1991/airportservice/internal/repository"
	"github.com/Domenick1991/airportservice/internal/service/resource"
)

type PictureStore interface {
	CrewPicturePath(firstName, lastName, filename string) string
	SaveImage(rel string, r io.Reader) error
	Remove(rel string) error
}

// CrewService adds picture uploads to the generic crew CRUD.
type CrewService struct {
	*resource.Service[domain.Crew, domain.CrewInput]
	repo  repository.CrewRepository
	store PictureStore
	log   *logger.Logger
}

func NewCrewService(repo repository.CrewRepository, store PictureStore, log *logger.Logger, opts ...resource.Option) *CrewService {
	if log == nil {
		log = logger.NewLogger()
	}
	opts = append(opts, resource.WithLogger(log))
	return &CrewService{
		Service: resource.NewService[domain.Crew, domain.CrewInput]("crews", repo, opts...),
		repo:    repo,
		store:   store,
		log:     log,
	}
}

func (s *CrewService) UploadPicture(ctx context.Context, id int64, filename string, r io.Reader) (*domain.Crew, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rel := s.store.CrewPicturePath(current.FirstName, current.LastName, filename)
	if err := s.store.SaveImage(rel, r); err != nil {
		if errors.Is(err, media.ErrTooLarge) || errors.Is(err, media.ErrUnsupportedType) {
			return nil, domain.ValidationError{Fields: map[string]string{"picture_member": err.Error()}, Err: err}
		}
		return nil, fmt.Errorf("save crew picture: %w", err)
	}

	updated, err := s.repo.SetPicture(ctx, id, rel)
	if err != nil {
		_ = s.store.Remove(rel)
		return nil, err
	}

	if current.Picture != "" {
		if err := s.store.Remove(current.Picture); err != nil {
			s.log.Warn("media", fmt.Sprintf("remove old picture %s: %v", current.Picture, err))
		}
	}

	s.Notify(ctx, kafka.EventUpdated, id, updated)
	return updated, nil
}
