package app

import (
	"errors"
	"net/http"

	"github.com/odanylenko/theatre-reservation-system/api"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

func (app *Application) ListPerformances(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	performances, metadata, err := app.performanceRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	items := make([]api.PerformanceListItem, len(performances))
	for i, performance := range performances {
		items[i] = api.PerformanceListItem{
			Id:               performance.ID,
			ShowTime:         performance.ShowTime,
			PlayTitle:        performance.PlayTitle,
			TheatreHallName:  performance.TheatreHallName,
			TheatreHallSeats: performance.TheatreHallSeats,
			TicketsAvailable: performance.TicketsAvailable,
		}
	}

	resp := api.PerformanceListResponse{
		Performances: items,
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	performance, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	takenSeats, err := app.performanceRepo.GetTakenSeats(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toPerformanceDetailResponse(*performance, takenSeats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var input api.PerformanceRequest

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

	if err := domain.ValidateShowTime(input.ShowTime, app.clock()); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			app.domainValidationResponse(w, r, validationErr)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	performance := domain.Performance{
		PlayID:   input.Play,
		HallID:   input.TheatreHall,
		ShowTime: input.ShowTime,
	}

	err = app.performanceRepo.Create(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.performanceRepo.GetById(r.Context(), performance.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toPerformanceDetailResponse(*created, nil), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.PerformanceRequest

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

	if err := domain.ValidateShowTime(input.ShowTime, app.clock()); err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			app.domainValidationResponse(w, r, validationErr)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	performance := domain.Performance{
		ID:       id,
		PlayID:   input.Play,
		HallID:   input.TheatreHall,
		ShowTime: input.ShowTime,
	}

	err = app.performanceRepo.Update(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	updated, err := app.performanceRepo.GetById(r.Context(), performance.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	takenSeats, err := app.performanceRepo.GetTakenSeats(r.Context(), performance.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toPerformanceDetailResponse(*updated, takenSeats), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.performanceRepo.Delete(r.Context(), id)
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

func (app *Application) readPagination(r *http.Request) (domain.Pagination, error) {
	page, err := readIntQueryParam(r, "page", DefaultPage)
	if err != nil {
		return domain.Pagination{}, err
	}

	pageSize, err := readIntQueryParam(r, "pageSize", DefaultPageSize)
	if err != nil {
		return domain.Pagination{}, err
	}

	if page < 1 || pageSize < 1 || pageSize > 100 {
		return domain.Pagination{}, errors.New("page must be >= 1 and pageSize must be between 1 and 100")
	}

	return domain.Pagination{Page: page, PageSize: pageSize}, nil
}

func toPerformanceDetailResponse(
	performance domain.Performance,
	takenSeats []domain.TakenSeat) api.PerformanceDetailResponse {

	seats := make([]api.SeatResponse, len(takenSeats))
	for i, seat := range takenSeats {
		seats[i] = api.SeatResponse{Row: seat.Row, Seat: seat.Seat}
	}

	return api.PerformanceDetailResponse{
		Id:          performance.ID,
		ShowTime:    performance.ShowTime,
		Play:        toPlayDetailResponse(*performance.Play),
		TheatreHall: toTheatreHallResponse(*performance.TheatreHall),
		TakenSeats:  seats,
	}
}

func toApiMetadata(metadata *domain.Metadata) api.Metadata {
	if metadata == nil {
		return api.Metadata{}
	}

	return api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
