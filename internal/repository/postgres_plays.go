package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

// GetAll lists plays matching the filters. A play matching several requested
// genres appears once. Ordering is reverse-title with id as a tie-breaker so
// listings stay deterministic.
func (p *PostgresPlayRepository) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, error) {
	query := `
		SELECT DISTINCT p.id, p.title, p.description, p.image_url
		FROM plays p
		LEFT JOIN play_genres pg ON pg.play_id = p.id
		WHERE (p.title ILIKE '%' || $1 || '%' OR $1 = '')
			AND (pg.genre_id = ANY($2) OR cardinality($2::bigint[]) = 0)
		ORDER BY p.title DESC, p.id
	`

	genreIDs := filters.GenreIDs
	if genreIDs == nil {
		genreIDs = []int{}
	}

	rows, err := p.db.Query(ctx, query, filters.Title, genreIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := make([]domain.Play, 0)

	for rows.Next() {
		var play domain.Play

		err := rows.Scan(&play.ID, &play.Title, &play.Description, &play.ImageUrl)
		if err != nil {
			return nil, err
		}

		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range plays {
		if err := p.loadAssociations(ctx, &plays[i]); err != nil {
			return nil, err
		}
	}

	return plays, nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `
		SELECT id, title, description, image_url
		FROM plays
		WHERE id = $1
	`

	var play domain.Play

	err := p.db.QueryRow(ctx, query, id).Scan(&play.ID, &play.Title, &play.Description, &play.ImageUrl)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if err := p.loadAssociations(ctx, &play); err != nil {
		return nil, err
	}

	return &play, nil
}

func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play, actorIDs, genreIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO plays (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, play.Title, play.Description).Scan(&play.ID)
		if err != nil {
			return err
		}

		return replaceAssociations(ctx, tx, play.ID, actorIDs, genreIDs)
	})
}

func (p *PostgresPlayRepository) Update(ctx context.Context, play *domain.Play, actorIDs, genreIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE plays
			SET title = $1, description = $2
			WHERE id = $3
		`

		result, err := tx.Exec(ctx, query, play.Title, play.Description, play.ID)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM play_actors WHERE play_id = $1`, play.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM play_genres WHERE play_id = $1`, play.ID)
		if err != nil {
			return err
		}

		return replaceAssociations(ctx, tx, play.ID, actorIDs, genreIDs)
	})
}

func (p *PostgresPlayRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM plays WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPlayRepository) SetImage(ctx context.Context, id int, imageUrl string) error {
	result, err := p.db.Exec(ctx, `UPDATE plays SET image_url = $1 WHERE id = $2`, imageUrl, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func replaceAssociations(ctx context.Context, tx pgx.Tx, playID int, actorIDs, genreIDs []int) error {
	for _, actorID := range actorIDs {
		_, err := tx.Exec(ctx, `INSERT INTO play_actors (play_id, actor_id) VALUES ($1, $2)`, playID, actorID)
		if err != nil {
			return foreignKeyToNotFound(err)
		}
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx, `INSERT INTO play_genres (play_id, genre_id) VALUES ($1, $2)`, playID, genreID)
		if err != nil {
			return foreignKeyToNotFound(err)
		}
	}

	return nil
}

func (p *PostgresPlayRepository) loadAssociations(ctx context.Context, play *domain.Play) error {
	actors, err := p.retrieveActors(ctx, play.ID)
	if err != nil {
		return err
	}

	genres, err := p.retrieveGenres(ctx, play.ID)
	if err != nil {
		return err
	}

	play.Actors = actors
	play.Genres = genres

	return nil
}

func (p *PostgresPlayRepository) retrieveActors(ctx context.Context, playID int) ([]domain.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name
		FROM actors a
		JOIN play_actors pa
			ON a.id = pa.actor_id AND pa.play_id = $1
		ORDER BY a.id
	`

	rows, err := p.db.Query(ctx, query, playID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}

func (p *PostgresPlayRepository) retrieveGenres(ctx context.Context, playID int) ([]domain.Genre, error) {
	query := `
		SELECT g.id, g.name
		FROM genres g
		JOIN play_genres pg
			ON g.id = pg.genre_id AND pg.play_id = $1
		ORDER BY g.id
	`

	rows, err := p.db.Query(ctx, query, playID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)

	for rows.Next() {
		var genre domain.Genre

		err := rows.Scan(&genre.ID, &genre.Name)
		if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}
