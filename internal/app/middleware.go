package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.logger.Info("request",
			"method", r.Method,
			"uri", r.URL.RequestURI(),
			"request_id", middleware.GetReqID(r.Context()),
		)

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caps := app.capabilities(r)
		if !caps.Authenticated {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withCapabilities(r.Context(), caps)))
	})
}

// requireStaff gates catalog writes: anonymous callers get 401, authenticated
// callers without the staff capability get 403.
func (app *Application) requireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caps := app.capabilities(r)
		if !caps.Authenticated {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		if !domain.CanWriteCatalog(caps) {
			app.notPermittedResponse(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withCapabilities(r.Context(), caps)))
	})
}

func withCapabilities(ctx context.Context, caps domain.Capabilities) context.Context {
	return context.WithValue(ctx, contextKeyCaps, caps)
}
