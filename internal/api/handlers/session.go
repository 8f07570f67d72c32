package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/models"
	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/internal/utils/response"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// GetSession godoc
//	@Summary		Current visitor session
//	@Description	Returns the intro flag, bag and wishlist counts and the active view.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.SessionResponse
//	@Failure		401	{object}	response.ErrorResponse	"Session expired"
//	@Router			/session [get]
func (h *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		session, err := h.sessionService.Get(r.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to load session", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewSessionResponse(session))
	}
}

// MarkIntroSeen godoc
//	@Summary	Record that the intro has been shown
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	models.SessionResponse
//	@Router		/session/intro [post]
func (h *SessionHandler) MarkIntroSeen() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		session, err := h.sessionService.MarkIntroSeen(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to mark intro as seen", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Intro marked as seen")
		response.Success(w, http.StatusOK, models.NewSessionResponse(session))
	}
}

// requireSession reads the session id placed on the context by the session
// middleware and answers 401 when it is absent.
func requireSession(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Request without a session")
		response.Error(w, errors.UnauthorizedError("Session required"))
		return uuid.Nil, false
	}

	return sessionID, true
}
