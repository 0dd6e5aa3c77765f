package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	query := `
		SELECT id, name, "rows", seats_in_row
		FROM theatre_halls
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.TheatreHall, 0)

	for rows.Next() {
		var hall domain.TheatreHall

		err := rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	query := `
		SELECT id, name, "rows", seats_in_row
		FROM theatre_halls
		WHERE id = $1
	`

	var hall domain.TheatreHall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.TheatreHall) error {
	query := `
		INSERT INTO theatre_halls (name, "rows", seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
}

func (p *PostgresHallRepository) Update(ctx context.Context, hall *domain.TheatreHall) error {
	query := `
		UPDATE theatre_halls
		SET name = $1, "rows" = $2, seats_in_row = $3
		WHERE id = $4
	`

	result, err := p.db.Exec(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow, hall.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM theatre_halls WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
