package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/odanylenko/theatre-reservation-system/api"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
	"github.com/odanylenko/theatre-reservation-system/internal/mocks"
	"github.com/odanylenko/theatre-reservation-system/internal/validator"
)

// testNow is the pinned instant used by handler tests that check the show
// time boundary.
var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:       validator.NewValidator(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager:  scs.New(),
		clock:           func() time.Time { return testNow },
		hallRepo:        &mocks.MockHallRepo{},
		genreRepo:       &mocks.MockGenreRepo{},
		actorRepo:       &mocks.MockActorRepo{},
		playRepo:        &mocks.MockPlayRepo{},
		performanceRepo: &mocks.MockPerformanceRepo{},
		reservationRepo: &mocks.MockReservationRepo{},
	}

	app.initMetrics()

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// withURLParam attaches a chi route parameter so handlers can be invoked
// without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

// setupTestSession loads a session onto the request and writes the identity
// keys the way the external identity service would.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int, staff bool) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	if userId != 0 {
		app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
		app.sessionManager.Put(ctx, SessionKeyStaff.String(), staff)
	}

	return r.WithContext(ctx)
}

// asUser marks the request as coming from an authenticated caller, the way
// requireAuthentication does after reading the session.
func asUser(r *http.Request, userId int, staff bool) *http.Request {
	caps := domain.Capabilities{
		UserID:        userId,
		Authenticated: true,
		Staff:         staff,
	}

	return r.WithContext(withCapabilities(r.Context(), caps))
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
