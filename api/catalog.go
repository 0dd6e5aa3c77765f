package api

type TheatreHallRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,min=1"`
}

type TheatreHallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type ActorRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
}

type ActorResponse struct {
	Id        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type PlayRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Actors      []int  `json:"actors" validate:"omitempty,dive,min=1"`
	Genres      []int  `json:"genres" validate:"omitempty,dive,min=1"`
}

// PlayListItem collapses actors and genres to display names, matching the
// listing shape of the catalog.
type PlayListItem struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageUrl    string   `json:"imageUrl,omitempty"`
	Actors      []string `json:"actors"`
	Genres      []string `json:"genres"`
}

type PlayListResponse struct {
	Plays []PlayListItem `json:"plays"`
}

type PlayDetailResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ImageUrl    string          `json:"imageUrl,omitempty"`
	Actors      []ActorResponse `json:"actors"`
	Genres      []GenreResponse `json:"genres"`
}

type PlayImageResponse struct {
	ImageUrl string `json:"imageUrl"`
}
