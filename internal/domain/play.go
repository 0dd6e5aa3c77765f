package domain

import "context"

type Play struct {
	ID          int
	Title       string
	Description string
	ImageUrl    string
	Actors      []Actor
	Genres      []Genre
}

// PlayFilters narrows a play listing. Title is a case-insensitive substring
// match; GenreIDs matches plays having at least one of the given genres.
type PlayFilters struct {
	Title    string
	GenreIDs []int
}

type PlayRepository interface {
	GetAll(ctx context.Context, filters PlayFilters) ([]Play, error)
	GetById(ctx context.Context, id int) (*Play, error)
	Create(ctx context.Context, play *Play, actorIDs, genreIDs []int) error
	Update(ctx context.Context, play *Play, actorIDs, genreIDs []int) error
	Delete(ctx context.Context, id int) error
	SetImage(ctx context.Context, id int, imageUrl string) error
}
