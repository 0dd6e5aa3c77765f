package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create books all requested seats as one atomic unit. Every spec is bounds
// checked against its performance's hall before any ticket is written, and
// the unique_ticket_row_seat_performance constraint is the final arbiter of
// seat ownership: under concurrent requests for the same seat exactly one
// transaction commits, the other rolls back with ErrSeatAlreadyTaken.
func (p *PostgresReservationRepository) Create(
	ctx context.Context,
	reservation *domain.Reservation,
	specs []domain.TicketSpec) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (user_id)
			VALUES ($1)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		halls := make(map[int]domain.TheatreHall)

		for _, spec := range specs {
			hall, ok := halls[spec.PerformanceID]
			if !ok {
				hall, err = hallForPerformance(ctx, tx, spec.PerformanceID)
				if err != nil {
					return err
				}

				halls[spec.PerformanceID] = hall
			}

			if err := domain.ValidateTicket(spec.Row, spec.Seat, hall); err != nil {
				return err
			}
		}

		rows := make([][]any, 0, len(specs))
		for _, spec := range specs {
			rows = append(rows, []any{
				spec.Row,
				spec.Seat,
				spec.PerformanceID,
				reservation.ID,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"tickets"},
			[]string{"row", "seat", "performance_id", "reservation_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrSeatAlreadyTaken
			}

			return err
		}

		reservation.Tickets, err = ticketsByReservation(ctx, tx, reservation.ID)

		return err
	})
}

func hallForPerformance(ctx context.Context, tx pgx.Tx, performanceID int) (domain.TheatreHall, error) {
	query := `
		SELECT h.id, h.name, h."rows", h.seats_in_row
		FROM performances p
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		WHERE p.id = $1
	`

	var hall domain.TheatreHall

	err := tx.QueryRow(ctx, query, performanceID).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hall, domain.ErrRecordNotFound
		}

		return hall, err
	}

	return hall, nil
}

func ticketsByReservation(ctx context.Context, tx pgx.Tx, reservationID int) ([]domain.Ticket, error) {
	query := `
		SELECT id, "row", seat, performance_id, reservation_id
		FROM tickets
		WHERE reservation_id = $1
		ORDER BY id
	`

	rows, err := tx.Query(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ReservationID,
		)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(
			&totalRecords,
			&reservation.ID,
			&reservation.UserID,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	for i := range reservations {
		tickets, err := p.retrieveTickets(ctx, reservations[i].ID)
		if err != nil {
			return nil, nil, err
		}

		reservations[i].Tickets = tickets
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetByIdAndUserId(ctx context.Context, id, userId int) (*domain.Reservation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	var reservation domain.Reservation

	err := p.db.QueryRow(ctx, query, id, userId).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	tickets, err := p.retrieveTickets(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}

	reservation.Tickets = tickets

	return &reservation, nil
}

func (p *PostgresReservationRepository) retrieveTickets(ctx context.Context, reservationID int) ([]domain.Ticket, error) {
	query := `
		SELECT id, "row", seat, performance_id, reservation_id
		FROM tickets
		WHERE reservation_id = $1
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.ReservationID,
		)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
