package domain

import "context"

type TheatreHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

// Capacity is the number of distinct (row, seat) pairs the hall can sell.
func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type HallRepository interface {
	GetAll(ctx context.Context) ([]TheatreHall, error)
	GetById(ctx context.Context, id int) (*TheatreHall, error)
	Create(ctx context.Context, hall *TheatreHall) error
	Update(ctx context.Context, hall *TheatreHall) error
	Delete(ctx context.Context, id int) error
}
