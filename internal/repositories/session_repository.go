package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps visitor sessions in process memory. Returned
// sessions are copies; mutate through Update. Get and Update both count as
// activity for Sweep.
type SessionRepository interface {
	Create(ctx context.Context) (*models.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Sweep(ctx context.Context, idleBefore time.Time) int
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepo() SessionRepository {
	return &sessionRepository{sessions: make(map[uuid.UUID]*models.Session)}
}

func (r *sessionRepository) Create(ctx context.Context) (*models.Session, error) {
	session := models.NewSession()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session

	return cloneSession(session), nil
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.LastSeenAt = time.Now()

	return cloneSession(session), nil
}

// Update runs fn against the stored session under the repository lock. When
// fn fails nothing is written back.
func (r *sessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	working := cloneSession(current)
	if err := fn(working); err != nil {
		return nil, err
	}

	working.LastSeenAt = time.Now()
	r.sessions[id] = working

	return cloneSession(working), nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, id)

	return nil
}

// Sweep drops sessions idle since before idleBefore and reports how many went.
func (r *sessionRepository) Sweep(ctx context.Context, idleBefore time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0

	for id, session := range r.sessions {
		if session.LastSeenAt.Before(idleBefore) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed
}

func cloneSession(s *models.Session) *models.Session {
	out := *s

	out.Cart.Items = cloneProducts(s.Cart.Items)
	out.Wishlist.Items = cloneProducts(s.Wishlist.Items)

	if s.Consultation.Result != nil {
		result := *s.Consultation.Result
		result.Recommendations = append([]models.Recommendation(nil), s.Consultation.Result.Recommendations...)
		out.Consultation.Result = &result
	}

	return &out
}

func cloneProducts(items []models.Product) []models.Product {
	if items == nil {
		return nil
	}

	out := make([]models.Product, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}

	return out
}
