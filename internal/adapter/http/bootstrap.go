package http

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	postgresdb "crudapp/internal/adapter/database/postgres"
	sqlitedb "crudapp/internal/adapter/database/sqlite"
	"crudapp/internal/adapter/http/routes"
	"crudapp/pkg/config"
)

func StartServer(deps routes.RouterDeps) {
	StartServerWithConfig(deps, config.GetDefaultConfig())
}

// StartServerWithConfig opens the store, wires the container and serves
// until the listener fails. Postgres is used when DATABASE_URL is set,
// the embedded sqlite store otherwise.
func StartServerWithConfig(deps routes.RouterDeps, cfg *config.AppConfig) {
	var container *Container

	if os.Getenv("DATABASE_URL") != "" {
		db, err := postgresdb.NewDB(context.Background())
		if err != nil {
			slog.Error("Failed to connect to postgres", "error", err)
			return
		}
		defer db.Close()

		container = NewPostgresContainer(db)
	} else {
		db, err := sqlitedb.NewDB()
		if err != nil {
			slog.Error("Failed to open sqlite database", "error", err)
			return
		}
		defer db.Close()

		container = NewContainer(db)
	}

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		UserHandler: container.UserHandler,
		TodoHandler: container.TodoHandler,
	}, deps, cfg)

	port := config.GetServerPort()

	slog.Info("Server starting",
		"port", port,
		"environment", cfg.Environment,
		"rate_limit_enabled", cfg.RateLimitEnabled)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}
