package app

import (
	"net/http"

	"github.com/odanylenko/theatre-reservation-system/internal/domain"
)

type sessionKey string

// Session keys written by the external identity service into the shared
// Redis-backed session store. This application only reads them.
const (
	SessionKeyUserId = sessionKey("userID")
	SessionKeyStaff  = sessionKey("isStaff")

	contextKeyCaps = sessionKey("capabilities")
)

func (s sessionKey) String() string {
	return string(s)
}

// capabilities reads the caller's capability set from the session. An empty
// session yields the anonymous capability set.
func (app *Application) capabilities(r *http.Request) domain.Capabilities {
	if caps, ok := r.Context().Value(contextKeyCaps).(domain.Capabilities); ok {
		return caps
	}

	userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())

	return domain.Capabilities{
		UserID:        userId,
		Authenticated: userId != 0,
		Staff:         app.sessionManager.GetBool(r.Context(), SessionKeyStaff.String()),
	}
}

func (app *Application) contextGetUserId(r *http.Request) int {
	caps := app.capabilities(r)
	if !caps.Authenticated {
		panic("missing user id from session")
	}

	return caps.UserID
}
