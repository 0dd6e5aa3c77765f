package mocks

import (
	"context"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockHallRepo struct {
	mock.Mock
	domain.HallRepository
}

func (m *MockHallRepo) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TheatreHall), args.Error(1)
}

func (m *MockHallRepo) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TheatreHall), args.Error(1)
}

func (m *MockHallRepo) Create(ctx context.Context, hall *domain.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockHallRepo) Update(ctx context.Context, hall *domain.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockHallRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
