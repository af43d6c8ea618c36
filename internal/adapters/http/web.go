package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"presenca/internal/adapters/email"
	"presenca/internal/adapters/http/middleware"
	attendanceStore "presenca/internal/adapters/storage/attendance"
	memberStore "presenca/internal/adapters/storage/member"
	userStore "presenca/internal/adapters/storage/user"
)

// Stores holds all storage dependencies.
type Stores struct {
	UserStore       userStore.Store
	MemberStore     memberStore.Store
	AttendanceStore attendanceStore.Store
}

// loadSecretKey reads the app secret from PRESENCA_SECRET_KEY (hex-encoded,
// 32 bytes). It signs CSRF tokens and flash cookies. In production the key
// MUST be set; in development a random key is generated per startup — there
// is deliberately no hardcoded fallback.
func loadSecretKey() []byte {
	if keyHex := os.Getenv("PRESENCA_SECRET_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PRESENCA_SECRET_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PRESENCA_ENV") == "production" {
		log.Fatal("PRESENCA_SECRET_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate secret key: %v", err)
	}
	log.Println("WARNING: using random secret key (sessions won't survive restart). Set PRESENCA_SECRET_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender) {
	emailSender = sender
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("PRESENCA_ENV") == "production"

	secretKey := loadSecretKey()
	middleware.InitFlash(secretKey)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(secretKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
