package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paydispatch/internal/bankfile"
	"paydispatch/internal/config"
	"paydispatch/internal/crypto"
	"paydispatch/internal/db"
	"paydispatch/internal/disbursement"
	batchhandler "paydispatch/internal/transport/http/handlers/batches"
	employeehandler "paydispatch/internal/transport/http/handlers/employees"
	"paydispatch/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.BankDataSecret == config.DefaultBankDataSecret {
		log.Printf("WARNING: BANK_DATA_SECRET is the insecure default; override it before handling real bank data")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	cipher, err := crypto.New(cfg.BankDataSecret)
	if err != nil {
		log.Fatalf("cipher init failed: %v", err)
	}

	files := bankfile.NewService(cfg.ACHPadBlocks)
	service := disbursement.NewService(disbursement.NewStore(pool), cipher, files, bankfile.Metadata{
		bankfile.MetaCompanyName:        cfg.CompanyName,
		bankfile.MetaCompanyID:          cfg.CompanyID,
		bankfile.MetaOriginRouting:      cfg.OriginRouting,
		bankfile.MetaDestinationRouting: cfg.DestinationRouting,
		bankfile.MetaDestinationName:    cfg.DestinationName,
		bankfile.MetaDebtorName:         cfg.DebtorName,
		bankfile.MetaDebtorIBAN:         cfg.DebtorIBAN,
		bankfile.MetaDebtorBIC:          cfg.DebtorBIC,
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
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

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		employeehandler.NewHandler(service).RegisterRoutes(r)
		batchhandler.NewHandler(service).RegisterRoutes(r)
	})

	log.Printf("paydispatch server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
