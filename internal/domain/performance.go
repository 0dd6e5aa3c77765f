package domain

import (
	"context"
	"time"
)

type Performance struct {
	ID          int
	PlayID      int
	HallID      int
	ShowTime    time.Time
	Play        *Play
	TheatreHall *TheatreHall
}

// PerformanceSummary is the list projection of a performance. It carries the
// availability count derived from hall capacity minus sold tickets; it is
// never persisted.
type PerformanceSummary struct {
	ID               int
	ShowTime         time.Time
	PlayTitle        string
	TheatreHallName  string
	TheatreHallSeats int
	TicketsAvailable int
}

// TakenSeat is a (row, seat) pair already ticketed for a performance.
type TakenSeat struct {
	Row  int
	Seat int
}

// ValidateShowTime rejects show times that lie in the past relative to the
// given instant. The instant is injected so the boundary is testable.
func ValidateShowTime(showTime, now time.Time) error {
	if showTime.Before(now) {
		return NewValidationError("show_time", "show time cannot be in the past")
	}

	return nil
}

type PerformanceRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]PerformanceSummary, *Metadata, error)
	GetById(ctx context.Context, id int) (*Performance, error)
	GetTakenSeats(ctx context.Context, id int) ([]TakenSeat, error)
	Create(ctx context.Context, performance *Performance) error
	Update(ctx context.Context, performance *Performance) error
	Delete(ctx context.Context, id int) error
}
