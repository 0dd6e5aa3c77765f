package mocks

import (
	"context"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockActorRepo struct {
	mock.Mock
	domain.ActorRepository
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Actor), args.Error(1)
}

func (m *MockActorRepo) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepo) Update(ctx context.Context, actor *domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
