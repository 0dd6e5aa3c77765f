package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/odanylenko/theatre-reservation-system/api"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/odanylenko/theatre-reservation-system/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PerformancesTestSuite struct {
	suite.Suite
	app             *Application
	performanceRepo *mocks.MockPerformanceRepo
}

func (s *PerformancesTestSuite) SetupTest() {
	s.performanceRepo = new(mocks.MockPerformanceRepo)

	s.app = newTestApplication(func(a *Application) {
		a.performanceRepo = s.performanceRepo
	})
}

func TestPerformancesSuite(t *testing.T) {
	suite.Run(t, new(PerformancesTestSuite))
}

func (s *PerformancesTestSuite) TestListPerformances() {
	showTime := testNow.Add(48 * time.Hour)

	tests := []struct {
		name           string
		url            string
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.PerformanceListResponse
		wantErrMessage string
	}{
		{
			name:           "should fail when page is not an integer",
			url:            "/performances?page=abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `query parameter "page" must be an integer`,
		},
		{
			name:           "should fail when pageSize is out of range",
			url:            "/performances?pageSize=500",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "page must be >= 1 and pageSize must be between 1 and 100",
		},
		{
			name: "should return performances with availability counts",
			url:  "/performances?page=2&pageSize=5",
			setupMocks: func() {
				s.performanceRepo.On("GetAll", mock.Anything, domain.Pagination{Page: 2, PageSize: 5}).
					Return([]domain.PerformanceSummary{
						{
							ID:               9,
							ShowTime:         showTime,
							PlayTitle:        "Hamlet",
							TheatreHallName:  "Main Stage",
							TheatreHallSeats: 200,
							TicketsAvailable: 197,
						},
					}, &domain.Metadata{
						CurrentPage:  2,
						PageSize:     5,
						FirstPage:    1,
						LastPage:     2,
						TotalRecords: 6,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.PerformanceListResponse{
				Performances: []api.PerformanceListItem{
					{
						Id:               9,
						ShowTime:         showTime,
						PlayTitle:        "Hamlet",
						TheatreHallName:  "Main Stage",
						TheatreHallSeats: 200,
						TicketsAvailable: 197,
					},
				},
				Metadata: api.Metadata{
					CurrentPage:  2,
					PageSize:     5,
					FirstPage:    1,
					LastPage:     2,
					TotalRecords: 6,
				},
			},
		},
		{
			name: "should fail when database error occurs",
			url:  "/performances",
			setupMocks: func() {
				s.performanceRepo.On("GetAll", mock.Anything, mock.Anything).
					Return(nil, nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.performanceRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, tt.url, nil)

			s.app.ListPerformances(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.PerformanceListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *PerformancesTestSuite) TestGetPerformance() {
	showTime := testNow.Add(24 * time.Hour)

	performance := domain.Performance{
		ID:       3,
		PlayID:   1,
		HallID:   2,
		ShowTime: showTime,
		Play: &domain.Play{
			ID:     1,
			Title:  "Hamlet",
			Actors: []domain.Actor{},
			Genres: []domain.Genre{},
		},
		TheatreHall: &domain.TheatreHall{ID: 2, Name: "Main Stage", Rows: 10, SeatsInRow: 20},
	}

	tests := []struct {
		name           string
		performanceID  string
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.PerformanceDetailResponse
		wantErrMessage string
	}{
		{
			name:          "should fail when performance does not exist",
			performanceID: "999",
			setupMocks: func() {
				s.performanceRepo.On("GetById", mock.Anything, 999).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrResourceNotFound,
		},
		{
			name:          "should return performance with taken seats",
			performanceID: "3",
			setupMocks: func() {
				s.performanceRepo.On("GetById", mock.Anything, 3).Return(&performance, nil)
				s.performanceRepo.On("GetTakenSeats", mock.Anything, 3).Return([]domain.TakenSeat{
					{Row: 1, Seat: 1},
					{Row: 1, Seat: 2},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.PerformanceDetailResponse{
				Id:       3,
				ShowTime: showTime,
				Play: api.PlayDetailResponse{
					Id:     1,
					Title:  "Hamlet",
					Actors: []api.ActorResponse{},
					Genres: []api.GenreResponse{},
				},
				TheatreHall: api.TheatreHallResponse{
					Id:         2,
					Name:       "Main Stage",
					Rows:       10,
					SeatsInRow: 20,
					Capacity:   200,
				},
				TakenSeats: []api.SeatResponse{
					{Row: 1, Seat: 1},
					{Row: 1, Seat: 2},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.performanceRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/performances/"+tt.performanceID, nil)
			r = withURLParam(r, "id", tt.performanceID)

			s.app.GetPerformance(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.PerformanceDetailResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *PerformancesTestSuite) TestCreatePerformance() {
	futureShowTime := testNow.Add(72 * time.Hour)
	pastShowTime := testNow.Add(-time.Hour)

	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when play is missing",
			body:           api.PerformanceRequest{TheatreHall: 2, ShowTime: futureShowTime},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "should fail when show time is in the past",
			body:           api.PerformanceRequest{Play: 1, TheatreHall: 2, ShowTime: pastShowTime},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "show time cannot be in the past",
		},
		{
			name: "should fail when play or hall does not exist",
			body: api.PerformanceRequest{Play: 999, TheatreHall: 2, ShowTime: futureShowTime},
			setupMocks: func() {
				s.performanceRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrResourceNotFound,
		},
		{
			name: "should create performance with valid input",
			body: api.PerformanceRequest{Play: 1, TheatreHall: 2, ShowTime: futureShowTime},
			setupMocks: func() {
				s.performanceRepo.On("Create", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Performance).ID = 4
					}).
					Return(nil)

				s.performanceRepo.On("GetById", mock.Anything, 4).Return(&domain.Performance{
					ID:          4,
					PlayID:      1,
					HallID:      2,
					ShowTime:    futureShowTime,
					Play:        &domain.Play{ID: 1, Title: "Hamlet"},
					TheatreHall: &domain.TheatreHall{ID: 2, Name: "Main Stage", Rows: 10, SeatsInRow: 20},
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.performanceRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/performances", tt.body)

			s.app.CreatePerformance(w, r)

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
