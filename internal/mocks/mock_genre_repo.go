package mocks

import (
	"context"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockGenreRepo struct {
	mock.Mock
	domain.GenreRepository
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}

func (m *MockGenreRepo) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepo) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
