package app

import (
	"errors"
	"net/http"

	"github.com/odanylenko/theatre-reservation-system/api"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

func (app *Application) ListReservations(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	items := make([]api.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		items[i] = toReservationResponse(reservation)
	}

	resp := api.UserReservationsResponse{
		Reservations: items,
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	reservation, err := app.reservationRepo.GetByIdAndUserId(r.Context(), id, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			// A reservation belonging to somebody else is indistinguishable
			// from one that does not exist.
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toReservationResponse(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var input api.ReservationRequest

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

	specs := make([]domain.TicketSpec, len(input.Tickets))
	for i, ticket := range input.Tickets {
		specs[i] = domain.TicketSpec{
			Row:           ticket.Row,
			Seat:          ticket.Seat,
			PerformanceID: ticket.Performance,
		}
	}

	reservation := domain.Reservation{UserID: app.contextGetUserId(r)}

	err = app.reservationRepo.Create(r.Context(), &reservation, specs)
	if err != nil {
		var validationErr *domain.ValidationError

		switch {
		case errors.As(err, &validationErr):
			app.domainValidationResponse(w, r, validationErr)
		case errors.Is(err, domain.ErrSeatAlreadyTaken):
			app.seatConflictResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.reservationsCreated.Add(r.Context(), 1)

	err = app.writeJSON(w, http.StatusCreated, toReservationResponse(reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toReservationResponse(reservation domain.Reservation) api.ReservationResponse {
	tickets := make([]api.TicketResponse, len(reservation.Tickets))
	for i, ticket := range reservation.Tickets {
		tickets[i] = api.TicketResponse{
			Id:          ticket.ID,
			Row:         ticket.Row,
			Seat:        ticket.Seat,
			Performance: ticket.PerformanceID,
		}
	}

	return api.ReservationResponse{
		Id:        reservation.ID,
		CreatedAt: reservation.CreatedAt,
		Tickets:   tickets,
	}
}
