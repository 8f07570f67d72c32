package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/internal/models"
	"github.com/nahidasmakeover/boutique/internal/utils/response"
)

const (
	SessionCookieName  = "nahida_session"
	SessionTokenHeader = "X-Session-Token"
)

type contextKey uuid.UUID

var SessionContextKey = contextKey(uuid.New())

// SessionResolver issues and reopens visitor sessions.
type SessionResolver interface {
	Start(ctx context.Context) (*models.Session, string, error)
	Resume(ctx context.Context, token string) (*models.Session, error)
}

type SessionMiddleware struct {
	resolver     SessionResolver
	secureCookie bool
	ttl          time.Duration
}

func NewSessionMiddleware(resolver SessionResolver, cfg config.Security) *SessionMiddleware {

	return &SessionMiddleware{resolver: resolver, secureCookie: cfg.SecureCookie, ttl: cfg.SessionTTL}

}

// Attach puts the visitor's session id on the request context. A missing,
// invalid or expired token silently starts a new session. Only /api/ paths
// carry sessions.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())

		token := sessionToken(r)

		var session *models.Session

		if token != "" {
			resumed, err := m.resolver.Resume(r.Context(), token)
			if err != nil {
				logger.Info("Session token rejected, starting a new session", slog.String("reason", err.Error()))
			} else {
				session = resumed
			}
		}

		if session == nil {
			started, newToken, err := m.resolver.Start(r.Context())
			if err != nil {
				logger.Error("Failed to start session", slog.String("error", err.Error()))
				response.Error(w, err)
				return
			}

			session, token = started, newToken

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.ttl.Seconds()),
				HttpOnly: true,
				Secure:   m.secureCookie,
				SameSite: http.SameSiteLaxMode,
			})

			logger.Info("Session started", slog.String("sessionId", session.ID.String()))
		}

		w.Header().Set(SessionTokenHeader, token)

		ctx := context.WithValue(r.Context(), SessionContextKey, session.ID)

		requestScopedLogger := logger.With(slog.String("sessionId", session.ID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SessionContextKey).(uuid.UUID)
	return id, ok
}

// sessionToken prefers the header so non-browser clients can override a stale cookie.
func sessionToken(r *http.Request) string {
	if token := r.Header.Get(SessionTokenHeader); token != "" {
		return token
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
