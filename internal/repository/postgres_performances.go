package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

type PostgresPerformanceRepository struct {
	db    *pgxpool.Pool
	plays *PostgresPlayRepository
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db:    db,
		plays: NewPostgresPlayRepository(db),
	}
}

// GetAll lists performances with their availability. The unsold-seat count is
// derived in a single aggregate pass over the tickets table, never per row.
func (p *PostgresPerformanceRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.PerformanceSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			p.id,
			p.show_time,
			pl.title,
			h.name,
			h."rows" * h.seats_in_row,
			h."rows" * h.seats_in_row - COUNT(t.id)
		FROM performances p
		JOIN plays pl ON p.play_id = pl.id
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		LEFT JOIN tickets t ON t.performance_id = p.id
		GROUP BY p.id, p.show_time, pl.title, h.name, h."rows", h.seats_in_row
		ORDER BY p.show_time, p.id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	performances := make([]domain.PerformanceSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var performance domain.PerformanceSummary

		err := rows.Scan(
			&totalRecords,
			&performance.ID,
			&performance.ShowTime,
			&performance.PlayTitle,
			&performance.TheatreHallName,
			&performance.TheatreHallSeats,
			&performance.TicketsAvailable,
		)
		if err != nil {
			return nil, nil, err
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return performances, metadata, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	query := `
		SELECT
			p.id,
			p.play_id,
			p.theatre_hall_id,
			p.show_time,
			h.name,
			h."rows",
			h.seats_in_row
		FROM performances p
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		WHERE p.id = $1
	`

	var performance domain.Performance
	var hall domain.TheatreHall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.HallID,
		&performance.ShowTime,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	hall.ID = performance.HallID
	performance.TheatreHall = &hall

	play, err := p.plays.GetById(ctx, performance.PlayID)
	if err != nil {
		return nil, err
	}

	performance.Play = play

	return &performance, nil
}

func (p *PostgresPerformanceRepository) GetTakenSeats(ctx context.Context, id int) ([]domain.TakenSeat, error) {
	query := `
		SELECT "row", seat
		FROM tickets
		WHERE performance_id = $1
		ORDER BY "row", seat
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.TakenSeat, 0)

	for rows.Next() {
		var seat domain.TakenSeat

		err := rows.Scan(&seat.Row, &seat.Seat)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `
		INSERT INTO performances (play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.PlayID,
		performance.HallID,
		performance.ShowTime).Scan(&performance.ID)

	if err != nil {
		return foreignKeyToNotFound(err)
	}

	return nil
}

func (p *PostgresPerformanceRepository) Update(ctx context.Context, performance *domain.Performance) error {
	query := `
		UPDATE performances
		SET play_id = $1, theatre_hall_id = $2, show_time = $3
		WHERE id = $4
	`

	result, err := p.db.Exec(
		ctx,
		query,
		performance.PlayID,
		performance.HallID,
		performance.ShowTime,
		performance.ID,
	)
	if err != nil {
		return foreignKeyToNotFound(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPerformanceRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
