package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is the per-visitor application state. Nothing in it outlives the session.
type Session struct {
	ID           uuid.UUID
	IntroSeen    bool
	Cart         Cart
	Wishlist     Wishlist
	Navigation   NavigationState
	SelectedID   string
	Consultation ConsultationState
	CreatedAt    time.Time
	LastSeenAt   time.Time
}

func NewSession() *Session {
	now := time.Now()

	return &Session{
		ID:           uuid.New(),
		Navigation:   NewNavigationState(),
		Consultation: ConsultationState{Status: ConsultationIdle},
		CreatedAt:    now,
		LastSeenAt:   now,
	}
}

type SessionClaims struct {
	SessionID uuid.UUID `json:"sid"`
	jwt.RegisteredClaims
}

type SessionResponse struct {
	ID            uuid.UUID       `json:"id"`
	IntroSeen     bool            `json:"introSeen"`
	CartCount     int             `json:"cartCount"`
	WishlistCount int             `json:"wishlistCount"`
	Navigation    NavigationState `json:"navigation"`
}

func NewSessionResponse(s *Session) *SessionResponse {
	return &SessionResponse{
		ID:            s.ID,
		IntroSeen:     s.IntroSeen,
		CartCount:     s.Cart.Len(),
		WishlistCount: len(s.Wishlist.Items),
		Navigation:    s.Navigation,
	}
}
