package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"communityHub/internal/config"
	"communityHub/internal/http-server/handlers/auth/login"
	"communityHub/internal/http-server/handlers/auth/me"
	"communityHub/internal/http-server/handlers/auth/refresh"
	"communityHub/internal/http-server/handlers/auth/register"
	"communityHub/internal/http-server/handlers/contact/submitMessage"
	"communityHub/internal/http-server/handlers/event/createEvent"
	"communityHub/internal/http-server/handlers/event/deleteEvent"
	"communityHub/internal/http-server/handlers/event/getEvent"
	"communityHub/internal/http-server/handlers/event/listEvents"
	"communityHub/internal/http-server/handlers/event/updateEvent"
	"communityHub/internal/http-server/handlers/newsletter/subscribe"
	"communityHub/internal/http-server/handlers/newsletter/unsubscribe"
	"communityHub/internal/http-server/handlers/rsvp/cancelRSVP"
	"communityHub/internal/http-server/handlers/rsvp/createRSVP"
	"communityHub/internal/http-server/handlers/rsvp/listEventRSVPs"
	"communityHub/internal/http-server/handlers/rsvp/updateRSVP"
	"communityHub/internal/http-server/handlers/user/getUser"
	"communityHub/internal/http-server/handlers/user/listUsers"
	"communityHub/internal/http-server/handlers/user/setRole"
	"communityHub/internal/http-server/handlers/user/updateProfile"
	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/http-server/middleware/mwlogger"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/handlers/slogpretty"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting community hub", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	authRequired := mwauth.New(log, cfg.Auth.Secret, storage)
	adminOnly := mwauth.RequireAdmin(log)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})

	router.Post("/auth/register", register.New(log, storage))
	router.Post("/auth/login", login.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL, storage))

	router.Get("/events", listEvents.New(log, storage))
	router.Get("/events/{id}", getEvent.New(log, storage))
	router.Get("/users/{id}", getUser.New(log, storage))

	router.Post("/newsletter/subscribe", subscribe.New(log, storage))
	router.Post("/newsletter/unsubscribe", unsubscribe.New(log, storage))
	router.Post("/contact", submitMessage.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(authRequired)

		r.Get("/auth/me", me.New(log))
		r.Post("/auth/refresh", refresh.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL))

		r.Post("/events/{id}/rsvp", createRSVP.New(log, storage))
		r.Get("/events/{id}/rsvps", listEventRSVPs.New(log, storage))
		r.Put("/rsvps/{id}", updateRSVP.New(log, storage))
		r.Delete("/rsvps/{id}", cancelRSVP.New(log, storage))

		r.Get("/users", listUsers.New(log, storage))
		r.Put("/users/me", updateProfile.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Post("/events", createEvent.New(log, storage))
			r.Put("/events/{id}", updateEvent.New(log, storage))
			r.Delete("/events/{id}", deleteEvent.New(log, storage))
			r.Put("/users/{id}/role", setRole.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fixed, err := storage.ReconcileParticipantCounts()
				if err != nil {
					log.Error("failed to reconcile participant counts", sl.Err(err))
				} else if fixed > 0 {
					log.Warn("participant counts drifted", slog.Int64("fixed", fixed))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
