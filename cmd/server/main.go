package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "rinkside/internal/adapters/email"
	"rinkside/internal/adapters/gateway"
	web "rinkside/internal/adapters/http"
	"rinkside/internal/adapters/storage"
	attendanceStore "rinkside/internal/adapters/storage/attendance"
	memberStore "rinkside/internal/adapters/storage/member"
	paymentStore "rinkside/internal/adapters/storage/payment"
	postStore "rinkside/internal/adapters/storage/post"
	sessionStore "rinkside/internal/adapters/storage/session"
	"rinkside/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("RINKSIDE_DB", "rinkside.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Wrap DB with slow-query logging
	timedDB := storage.NewTimedDB(db)

	members := memberStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		MemberStore:     members,
		SessionStore:    sessionStore.NewSQLiteStore(timedDB),
		AttendanceStore: attendanceStore.NewSQLiteStore(timedDB),
		PaymentStore:    paymentStore.NewSQLiteStore(timedDB),
		PostStore:       postStore.NewSQLiteStore(timedDB),
	}

	// Seed the built-in accounts (all environments, idempotent)
	seedDeps := orchestrators.BuiltinSeedDeps{MemberStore: members}
	if err := orchestrators.ExecuteSeedBuiltinAccounts(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed built-in accounts: %v", err)
	}

	// Seed synthetic data for development only
	if os.Getenv("RINKSIDE_ENV") != "production" {
		synDeps := orchestrators.SyntheticSeedDeps{
			MemberStore:     members,
			SessionStore:    stores.SessionStore,
			AttendanceStore: stores.AttendanceStore,
			PostStore:       stores.PostStore,
		}
		if err := orchestrators.ExecuteSeedSynthetic(context.Background(), synDeps); err != nil {
			log.Fatalf("failed to seed synthetic data: %v", err)
		}
		log.Println("Synthetic seed data loaded (dev mode)")
	}

	// Configure email sender
	resendKey := os.Getenv("RINKSIDE_RESEND_KEY")
	emailFrom := envOrDefault("RINKSIDE_RESEND_FROM", "Pentagon Skating <noreply@pentagonskating.com>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom))
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender())
		if os.Getenv("RINKSIDE_ENV") == "production" {
			log.Println("WARNING: RINKSIDE_RESEND_KEY is not set, email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop, set RINKSIDE_RESEND_KEY for real delivery)")
		}
	}

	// Payment processing is simulated: charges take ~2s and ~10% decline
	web.SetPaymentGateway(gateway.NewSimulated())

	mux := web.NewMux(stores)

	addr := envOrDefault("RINKSIDE_ADDR", ":8080")
	log.Printf("Rinkside %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("RINKSIDE_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
