package mocks

import (
	"context"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) Create(
	ctx context.Context,
	reservation *domain.Reservation,
	specs []domain.TicketSpec) error {

	args := m.Called(ctx, reservation, specs)
	return args.Error(0)
}

func (m *MockReservationRepo) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockReservationRepo) GetByIdAndUserId(ctx context.Context, id, userId int) (*domain.Reservation, error) {
	args := m.Called(ctx, id, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
