package service

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/metrics"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
)

type SessionService interface {
	Start(ctx context.Context) (*models.Session, string, error)
	Resume(ctx context.Context, token string) (*models.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	MarkIntroSeen(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Sweep(ctx context.Context) int
}

type sessionService struct {
	repo repository.SessionRepository
	key  []byte
	ttl  time.Duration
}

func NewSessionService(repo repository.SessionRepository, cfg config.Security) SessionService {
	return &sessionService{
		repo: repo,
		key:  []byte(cfg.SessionKey),
		ttl:  cfg.SessionTTL,
	}
}

// Start creates a fresh session and the signed token that identifies it.
func (s *sessionService) Start(ctx context.Context) (*models.Session, string, error) {

	session, err := s.repo.Create(ctx)
	if err != nil {
		return nil, "", errors.InternalError("Failed to start session").WithError(err)
	}

	now := time.Now()

	claims := &models.SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.key)
	if err != nil {
		return nil, "", errors.InternalError("Failed to sign session token").WithError(err)
	}

	metrics.RecordSessionCreated()

	return session, tokenString, nil
}

func (s *sessionService) Resume(ctx context.Context, tokenString string) (*models.Session, error) {

	claims := &models.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, stdErrors.New("unexpected signing method")
		}
		return s.key, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.UnauthorizedError("Invalid or expired session token").WithError(err)
	}

	return s.Get(ctx, claims.SessionID)
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, sessionError(err)
	}

	return session, nil
}

// MarkIntroSeen sets the intro flag. Once set it stays set.
func (s *sessionService) MarkIntroSeen(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.repo.Update(ctx, id, func(session *models.Session) error {
		session.IntroSeen = true
		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	return session, nil
}

// Sweep drops sessions idle for longer than the token lifetime.
func (s *sessionService) Sweep(ctx context.Context) int {
	return s.repo.Sweep(ctx, time.Now().Add(-s.ttl))
}

// sessionError keeps app errors raised inside an update and maps a missing
// session to 401 so the client starts over.
func sessionError(err error) error {
	if appErr, ok := errors.IsAppError(err); ok {
		return appErr
	}

	if stdErrors.Is(err, repository.ErrSessionNotFound) {
		return errors.UnauthorizedError("Session expired").WithError(err)
	}

	return errors.InternalError("Failed to access session").WithError(err)
}
