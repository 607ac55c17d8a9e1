package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"rinkside/internal/adapters/email"
	"rinkside/internal/adapters/gateway"
	"rinkside/internal/adapters/http/middleware"
	attendanceStore "rinkside/internal/adapters/storage/attendance"
	memberStore "rinkside/internal/adapters/storage/member"
	paymentStore "rinkside/internal/adapters/storage/payment"
	postStore "rinkside/internal/adapters/storage/post"
	sessionStore "rinkside/internal/adapters/storage/session"
)

// Stores holds all storage dependencies.
type Stores struct {
	MemberStore     memberStore.Store
	SessionStore    sessionStore.Store
	AttendanceStore attendanceStore.Store
	PaymentStore    paymentStore.Store
	PostStore       postStore.Store
}

// loadCSRFKey reads the CSRF secret from RINKSIDE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("RINKSIDE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("RINKSIDE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("RINKSIDE_ENV") == "production" {
		log.Fatal("RINKSIDE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set RINKSIDE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global payment gateway (set by SetPaymentGateway)
var paymentGateway gateway.Gateway

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender) {
	emailSender = sender
}

// SetPaymentGateway sets the global payment gateway for the application.
func SetPaymentGateway(g gateway.Gateway) {
	paymentGateway = g
}

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("RINKSIDE_ENV") == "production"

	mux := http.NewServeMux()
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
