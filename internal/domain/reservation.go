package domain

import (
	"context"
	"fmt"
	"time"
)

type Reservation struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID            int
	Row           int
	Seat          int
	PerformanceID int
	ReservationID int
}

// TicketSpec is an unpersisted (row, seat, performance) triple submitted as
// part of a reservation request.
type TicketSpec struct {
	Row           int
	Seat          int
	PerformanceID int
}

// ValidateTicket checks that a ticket's row and seat lie within the physical
// bounds of the given hall. The row is checked before the seat, and each
// failure is scoped to its own field. Seat uniqueness is not checked here;
// that is enforced by the storage layer at persistence time.
func ValidateTicket(row, seat int, hall TheatreHall) error {
	for _, check := range []struct {
		value     int
		field     string
		hallField string
		hallCount int
	}{
		{row, "row", "rows", hall.Rows},
		{seat, "seat", "seats_in_row", hall.SeatsInRow},
	} {
		if check.value < 1 || check.value > check.hallCount {
			return NewValidationError(
				check.field,
				fmt.Sprintf(
					"%s number must be in available range: (1, %s): (1, %d)",
					check.field,
					check.hallField,
					check.hallCount,
				),
			)
		}
	}

	return nil
}

type ReservationRepository interface {
	// Create persists the reservation together with one ticket per spec as a
	// single atomic unit. If any spec fails validation, references a missing
	// performance, or collides with an already ticketed seat, nothing is
	// persisted.
	Create(ctx context.Context, reservation *Reservation, specs []TicketSpec) error
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]Reservation, *Metadata, error)
	GetByIdAndUserId(ctx context.Context, id, userId int) (*Reservation, error)
}
