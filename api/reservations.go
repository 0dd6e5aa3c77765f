package api

import "time"

type TicketSpecRequest struct {
	Row         int `json:"row" validate:"required,min=1"`
	Seat        int `json:"seat" validate:"required,min=1"`
	Performance int `json:"performance" validate:"required,min=1"`
}

type ReservationRequest struct {
	Tickets []TicketSpecRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketResponse struct {
	Id          int `json:"id"`
	Row         int `json:"row"`
	Seat        int `json:"seat"`
	Performance int `json:"performance"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Tickets   []TicketResponse `json:"tickets"`
}

type UserReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Metadata     Metadata              `json:"metadata"`
}
