package api

import (
	"context"
	"io"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUseCase is a mock implementation of resource.UseCase
type MockUseCase[E any, In any] struct {
	mock.Mock
}

func (m *MockUseCase[E, In]) List(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *MockUseCase[E, In]) Get(ctx context.Context, id int64) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockUseCase[E, In]) Create(ctx context.Context, in In) (*E, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockUseCase[E, In]) Update(ctx context.Context, id int64, in In) (*E, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockUseCase[E, In]) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCrewUseCase struct {
	MockUseCase[domain.Crew, domain.CrewInput]
}

func (m *MockCrewUseCase) UploadPicture(ctx context.Context, id int64, filename string, r io.Reader) (*domain.Crew, error) {
	args := m.Called(ctx, id, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

type MockAccountUseCase struct {
	mock.Mock
}

func (m *MockAccountUseCase) Register(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAccountUseCase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAccountUseCase) Me(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
