package mocks

import (
	"context"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPerformanceRepo struct {
	mock.Mock
	domain.PerformanceRepository
}

func (m *MockPerformanceRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.PerformanceSummary, *domain.Metadata, error) {

	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.PerformanceSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockPerformanceRepo) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Performance), args.Error(1)
}

func (m *MockPerformanceRepo) GetTakenSeats(ctx context.Context, id int) ([]domain.TakenSeat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TakenSeat), args.Error(1)
}

func (m *MockPerformanceRepo) Create(ctx context.Context, performance *domain.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) Update(ctx context.Context, performance *domain.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
