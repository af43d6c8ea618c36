package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "presenca/internal/adapters/email"
	web "presenca/internal/adapters/http"
	"presenca/internal/adapters/storage"
	attendanceStore "presenca/internal/adapters/storage/attendance"
	memberStore "presenca/internal/adapters/storage/member"
	userStore "presenca/internal/adapters/storage/user"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	// Initialize database with WAL mode, foreign keys, and busy timeout.
	// Foreign keys must be on for the member -> attendance cascade.
	dbPath := envOrDefault("PRESENCA_DB", "presenca.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Create schema
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap DB with slow-query logging
	timedDB := storage.NewTimedDB(db)

	stores := &web.Stores{
		UserStore:       userStore.NewSQLiteStore(timedDB),
		MemberStore:     memberStore.NewSQLiteStore(timedDB),
		AttendanceStore: attendanceStore.NewSQLiteStore(timedDB),
	}

	// Configure email sender for registration welcome messages
	resendKey := os.Getenv("PRESENCA_RESEND_KEY")
	emailFrom := envOrDefault("PRESENCA_RESEND_FROM", "Presença <noreply@presenca.app>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom))
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender())
		log.Println("Email sender configured (noop — set PRESENCA_RESEND_KEY for real delivery)")
	}

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("PRESENCA_ADDR", ":8080")
	log.Printf("Presença %s starting on %s (env=%s)", version, addr, envOrDefault("PRESENCA_ENV", "development"))

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
