package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-backend/internal/accounts"
	"crm-backend/internal/activities"
	"crm-backend/internal/auth"
	"crm-backend/internal/config"
	"crm-backend/internal/contacts"
	"crm-backend/internal/db"
	"crm-backend/internal/deals"
	"crm-backend/internal/leads"
	"crm-backend/internal/middleware"
	"crm-backend/internal/reports"
	"crm-backend/internal/transport"
	"crm-backend/internal/users"
	"crm-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("postgres connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("postgres connected")

	if err := db.Migrate(gdb); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "crm-backend",
		}
	}

	val := validation.New()

	accountsRepo := accounts.NewRepository(gdb)
	accountsHandler := accounts.NewHandler(accounts.NewService(accountsRepo), val, logger)

	contactsRepo := contacts.NewRepository(gdb)
	contactsHandler := contacts.NewHandler(contacts.NewService(contactsRepo), val, logger)

	dealsRepo := deals.NewRepository(gdb)
	dealsHandler := deals.NewHandler(deals.NewService(dealsRepo, cfg.Timezone), val, logger)

	leadsRepo := leads.NewRepository(gdb)
	leadsHandler := leads.NewHandler(leads.NewService(leadsRepo), val, logger)

	activitiesRepo := activities.NewRepository(gdb)
	activitiesHandler := activities.NewHandler(activities.NewService(activitiesRepo, cfg.Timezone), val, logger)

	usersRepo := users.NewRepository(gdb)
	usersHandler := users.NewHandler(users.NewService(usersRepo), val, logger)

	reportsHandler := reports.NewHandler(reports.NewService(reports.Counters{
		Accounts:   accountsRepo,
		Contacts:   contactsRepo,
		Deals:      dealsRepo,
		Leads:      leadsRepo,
		Activities: activitiesRepo,
	}), logger)

	authHandler := auth.NewHandler(jwtManager, cfg.AuthEmail, cfg.AuthName, cfg.AuthPasswordHash, val, logger)

	fallbackActor := auth.Actor{Name: cfg.FallbackActorName, Email: cfg.FallbackActorEmail}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(middleware.Actor(jwtManager, fallbackActor))

	writeLimiter := middleware.NewRateLimiter(cfg.RateLimitWrites, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	registerEntity := func(api chi.Router, path string, h interface {
		List(http.ResponseWriter, *http.Request)
		GetByID(http.ResponseWriter, *http.Request)
		Create(http.ResponseWriter, *http.Request)
		Update(http.ResponseWriter, *http.Request)
		Delete(http.ResponseWriter, *http.Request)
	}) {
		api.Get("/"+path, h.List)
		api.Get("/"+path+"/{id}", h.GetByID)
		api.With(writeLimiter.Middleware).Post("/"+path, h.Create)
		api.With(writeLimiter.Middleware).Put("/"+path+"/{id}", h.Update)
		api.With(writeLimiter.Middleware).Delete("/"+path+"/{id}", h.Delete)
	}

	registerRoutes := func(api chi.Router) {
		registerEntity(api, "accounts", accountsHandler)
		registerEntity(api, "contacts", contactsHandler)
		registerEntity(api, "deals", dealsHandler)
		registerEntity(api, "leads", leadsHandler)
		registerEntity(api, "activities", activitiesHandler)

		api.With(writeLimiter.Middleware).Post("/reports", reportsHandler.Generate)
		api.Get("/reports/download", reportsHandler.Download)

		api.Get("/users/me", usersHandler.GetMe)
		api.Put("/users/me", usersHandler.UpdateMe)
		api.Get("/users/{id}", usersHandler.GetByID)
		api.Put("/users/{id}", usersHandler.Update)

		api.Post("/auth/login", authHandler.Login)
	}

	// Supports /api/... (legacy) and /api/v1/... .
	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		transport.WriteMessage(w, http.StatusOK, "ok")
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
