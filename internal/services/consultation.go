package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/metrics"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
	"github.com/nahidasmakeover/boutique/pkg/gemini"
)

const MissingImageMessage = "Please provide a beautiful image of yourself."

type ConsultationService interface {
	Analyze(ctx context.Context, sessionID uuid.UUID, image []byte) (*models.ConsultationState, error)
	GetState(ctx context.Context, sessionID uuid.UUID) (*models.ConsultationState, error)
}

type consultationService struct {
	sessions repository.SessionRepository
	analyzer gemini.Analyzer
}

func NewConsultationService(sessions repository.SessionRepository, analyzer gemini.Analyzer) ConsultationService {
	return &consultationService{sessions: sessions, analyzer: analyzer}
}

func (s *consultationService) GetState(ctx context.Context, sessionID uuid.UUID) (*models.ConsultationState, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionError(err)
	}

	state := session.Consultation

	return &state, nil
}

// Analyze sends one portrait to the model. Only image payloads reach the
// analyzer and a session runs at most one analysis at a time.
func (s *consultationService) Analyze(ctx context.Context, sessionID uuid.UUID, image []byte) (*models.ConsultationState, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("sessionId", sessionID.String()))

	mimeType, ok := detectImage(image)
	if !ok {
		metrics.RecordConsultation(metrics.OutcomeRejected)
		logger.Warn("Consultation rejected, payload is not an image", slog.String("mimeType", mimeType))
		return nil, errors.ValidationError(MissingImageMessage)
	}

	_, err := s.sessions.Update(ctx, sessionID, func(session *models.Session) error {
		if session.Consultation.Status == models.ConsultationAnalyzing {
			return errors.TooManyRequestsError("A consultation is already in progress")
		}

		session.Consultation = models.ConsultationState{Status: models.ConsultationAnalyzing}

		return nil
	})
	if err != nil {
		return nil, sessionError(err)
	}

	logger.Info("Consultation started", slog.String("mimeType", mimeType), slog.Int("bytes", len(image)))

	// the model call outlives a disconnecting client
	result, analyzeErr := s.analyzer.Analyze(context.WithoutCancel(ctx), image, mimeType)

	session, err := s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(session *models.Session) error {
		if analyzeErr != nil {
			session.Consultation = models.ConsultationState{
				Status: models.ConsultationFailed,
				Error:  errors.AnalysisFailedMessage,
			}
			return nil
		}

		session.Consultation = models.ConsultationState{Status: models.ConsultationCompleted, Result: result}

		return nil
	})

	if err != nil {
		if stdErrors.Is(err, repository.ErrSessionNotFound) {
			logger.Warn("Session ended before analysis finished, discarding result")
		}
		return nil, sessionError(err)
	}

	if analyzeErr != nil {
		metrics.RecordConsultation(metrics.OutcomeFailed)
		logger.Error("Consultation failed", slog.String("error", analyzeErr.Error()))
		return nil, errors.AnalysisFailedError().WithError(analyzeErr)
	}

	metrics.RecordConsultation(metrics.OutcomeCompleted)
	logger.Info("Consultation completed", slog.Int("recommendations", len(result.Recommendations)))

	state := session.Consultation

	return &state, nil
}

func detectImage(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}

	mtype := mimetype.Detect(data)

	return mtype.String(), strings.HasPrefix(mtype.String(), "image/")
}
