package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/audit"
	"backoffice/internal/domain/auth"
	"backoffice/internal/domain/clients"
	"backoffice/internal/domain/hours"
	"backoffice/internal/domain/invoices"
	"backoffice/internal/domain/payroll"
	"backoffice/internal/domain/rates"
	"backoffice/internal/domain/reports"
	"backoffice/internal/domain/timesheets"
	"backoffice/internal/platform/config"
	"backoffice/internal/platform/db"
	"backoffice/internal/platform/email"
	"backoffice/internal/platform/metrics"
	audithandler "backoffice/internal/transport/http/handlers/audit"
	authhandler "backoffice/internal/transport/http/handlers/auth"
	clientshandler "backoffice/internal/transport/http/handlers/clients"
	hourshandler "backoffice/internal/transport/http/handlers/hours"
	invoiceshandler "backoffice/internal/transport/http/handlers/invoices"
	payrollhandler "backoffice/internal/transport/http/handlers/payroll"
	rateshandler "backoffice/internal/transport/http/handlers/rates"
	reportshandler "backoffice/internal/transport/http/handlers/reports"
	timesheetshandler "backoffice/internal/transport/http/handlers/timesheets"
	"backoffice/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}
	auditSvc := audit.New(pool)
	mailer := email.New(cfg)

	authSvc := auth.NewService(auth.NewStore(pool), mailer, cfg)
	ratesSvc := rates.NewService(rates.NewStore(pool))
	timesheetsSvc := timesheets.NewService(timesheets.NewStore(pool))
	hoursSvc := hours.NewService(pool, ratesSvc)
	invoicesSvc := invoices.NewService(pool, auditSvc, collector, cfg.StorageDir)
	payrollSvc := payroll.NewService(pool, auditSvc)
	reportsSvc := reports.NewService(pool, auditSvc, collector, cfg.StorageDir)
	clientsStore := clients.NewStore(pool)

	retryBase := time.Duration(cfg.ReadRetryBaseMs) * time.Millisecond

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(collector.Snapshot()); err != nil {
				log.Printf("metrics encode failed: %v", err)
			}
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authSvc)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/request-reset", authHandler.HandleRequestReset)
		r.Post("/auth/reset", authHandler.HandleResetPassword)

		clientshandler.NewHandler(clientsStore, cfg.ReadRetryAttempts, retryBase).RegisterRoutes(r)
		rateshandler.NewHandler(ratesSvc).RegisterRoutes(r)
		timesheetshandler.NewHandler(timesheetsSvc).RegisterRoutes(r)
		hourshandler.NewHandler(hoursSvc).RegisterRoutes(r)
		invoiceshandler.NewHandler(invoicesSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc).RegisterRoutes(r)
	})

	log.Printf("back office server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
