package api

import "time"

type PerformanceRequest struct {
	Play        int       `json:"play" validate:"required,min=1"`
	TheatreHall int       `json:"theatreHall" validate:"required,min=1"`
	ShowTime    time.Time `json:"showTime" validate:"required"`
}

type PerformanceListItem struct {
	Id               int       `json:"id"`
	ShowTime         time.Time `json:"showTime"`
	PlayTitle        string    `json:"playTitle"`
	TheatreHallName  string    `json:"theatreHallName"`
	TheatreHallSeats int       `json:"theatreHallSeats"`
	TicketsAvailable int       `json:"ticketsAvailable"`
}

type PerformanceListResponse struct {
	Performances []PerformanceListItem `json:"performances"`
	Metadata     Metadata              `json:"metadata"`
}

type SeatResponse struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	Id          int                 `json:"id"`
	ShowTime    time.Time           `json:"showTime"`
	Play        PlayDetailResponse  `json:"play"`
	TheatreHall TheatreHallResponse `json:"theatreHall"`
	TakenSeats  []SeatResponse      `json:"takenSeats"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}
