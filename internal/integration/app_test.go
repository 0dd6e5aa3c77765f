package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odanylenko/theatre-reservation-system/internal/app"
	"github.com/odanylenko/theatre-reservation-system/internal/media"
	"github.com/odanylenko/theatre-reservation-system/internal/repository"
	appvalidator "github.com/odanylenko/theatre-reservation-system/internal/validator"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App      *app.Application
	DB       *pgxpool.Pool
	Sessions *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		media.NewDiskStore(cfg.Media.Dir, cfg.Media.UrlPrefix),
		repository.NewPostgresHallRepository(db),
		repository.NewPostgresGenreRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresPlayRepository(db),
		repository.NewPostgresPerformanceRepository(db),
		repository.NewPostgresReservationRepository(db),
	)

	return &TestApp{
		App:      application,
		DB:       db,
		Sessions: sessionManager,
	}, nil
}

// authenticatedCookies commits a session the way the identity service would
// and returns the resulting session cookie.
func (ta *TestApp) authenticatedCookies(t testing.TB, userId int, staff bool) []http.Cookie {
	ctx, err := ta.Sessions.Load(context.Background(), "")
	require.NoError(t, err)

	ta.Sessions.Put(ctx, app.SessionKeyUserId.String(), userId)
	ta.Sessions.Put(ctx, app.SessionKeyStaff.String(), staff)

	token, _, err := ta.Sessions.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: "session_id", Value: token}}
}
