package app

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/odanylenko/theatre-reservation-system/api"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/odanylenko/theatre-reservation-system/internal/media"
)

// ListPlays supports the query parameters `title` (case-insensitive substring,
// ex. ?title=fiction) and `genres` (comma-separated genre ids, ex. ?genres=2,5).
func (app *Application) ListPlays(w http.ResponseWriter, r *http.Request) {
	genreIDs, err := readCSVIntParam(r, "genres")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.PlayFilters{
		Title:    r.URL.Query().Get("title"),
		GenreIDs: genreIDs,
	}

	plays, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	items := make([]api.PlayListItem, len(plays))
	for i, play := range plays {
		items[i] = toPlayListItem(play)
	}

	err = app.writeJSON(w, http.StatusOK, api.PlayListResponse{Plays: items}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlay(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlayDetailResponse(*play), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var input api.PlayRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
	}

	err = app.playRepo.Create(r.Context(), &play, input.Actors, input.Genres)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("one or more referenced actors or genres do not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.playRepo.GetById(r.Context(), play.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPlayDetailResponse(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePlay(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.PlayRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	play := domain.Play{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
	}

	err = app.playRepo.Update(r.Context(), &play, input.Actors, input.Genres)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	updated, err := app.playRepo.GetById(r.Context(), play.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toPlayDetailResponse(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeletePlay(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.playRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadPlayImage accepts a multipart form with an "image" file and stores it
// under a name derived from the slugified play title plus a unique suffix.
func (app *Application) UploadPlayImage(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = r.ParseMultipartForm(10 << 20)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("request must be a multipart form with an image file"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("missing image file in form field %q", "image"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := media.ImageName(play.Title, ext)

	imageUrl, err := app.mediaStore.Save(r.Context(), name, file)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.playRepo.SetImage(r.Context(), play.ID, imageUrl)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.PlayImageResponse{ImageUrl: imageUrl}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlayListItem(play domain.Play) api.PlayListItem {
	actors := make([]string, len(play.Actors))
	for i, actor := range play.Actors {
		actors[i] = actor.FullName()
	}

	genres := make([]string, len(play.Genres))
	for i, genre := range play.Genres {
		genres[i] = genre.Name
	}

	return api.PlayListItem{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		ImageUrl:    play.ImageUrl,
		Actors:      actors,
		Genres:      genres,
	}
}

func toPlayDetailResponse(play domain.Play) api.PlayDetailResponse {
	actors := make([]api.ActorResponse, len(play.Actors))
	for i, actor := range play.Actors {
		actors[i] = toActorResponse(actor)
	}

	genres := make([]api.GenreResponse, len(play.Genres))
	for i, genre := range play.Genres {
		genres[i] = api.GenreResponse{Id: genre.ID, Name: genre.Name}
	}

	return api.PlayDetailResponse{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		ImageUrl:    play.ImageUrl,
		Actors:      actors,
		Genres:      genres,
	}
}
