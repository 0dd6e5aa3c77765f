package mocks

import (
	"context"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPlayRepo struct {
	mock.Mock
	domain.PlayRepository
}

func (m *MockPlayRepo) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Play), args.Error(1)
}

func (m *MockPlayRepo) GetById(ctx context.Context, id int) (*domain.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Play), args.Error(1)
}

func (m *MockPlayRepo) Create(ctx context.Context, play *domain.Play, actorIDs, genreIDs []int) error {
	args := m.Called(ctx, play, actorIDs, genreIDs)
	return args.Error(0)
}

func (m *MockPlayRepo) Update(ctx context.Context, play *domain.Play, actorIDs, genreIDs []int) error {
	args := m.Called(ctx, play, actorIDs, genreIDs)
	return args.Error(0)
}

func (m *MockPlayRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlayRepo) SetImage(ctx context.Context, id int, imageUrl string) error {
	args := m.Called(ctx, id, imageUrl)
	return args.Error(0)
}
