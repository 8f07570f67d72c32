package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	appErrors "github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/pkg/gemini"
	"github.com/nahidasmakeover/boutique/pkg/gemini/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

var sampleAnalysis = &models.AnalysisResult{
	FaceShape:   "Oval",
	SkinTone:    "Warm Olive",
	EyeColor:    "Hazel",
	StyleAdvice: "Soft glam with bronze accents.",
	Recommendations: []models.Recommendation{
		{ProductName: "Nahida Bloom Lipstick", Reason: "Complements warm undertones", ShadeSuggestion: "Rosewood"},
	},
}

func setupConsultationServiceTest(t *testing.T) (service.ConsultationService, *mocks.Analyzer, repository.SessionRepository, uuid.UUID) {
	repo := repository.NewSessionRepo()
	mockAnalyzer := mocks.NewAnalyzer(t)

	return service.NewConsultationService(repo, mockAnalyzer), mockAnalyzer, repo, newTestSession(t, repo)
}

func TestConsultationService_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		consultationService, mockAnalyzer, _, sessionID := setupConsultationServiceTest(t)
		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").Return(sampleAnalysis, nil).Once()

		// Act
		state, err := consultationService.Analyze(ctx, sessionID, pngImage)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.ConsultationCompleted, state.Status)
		assert.Equal(t, "Oval", state.Result.FaceShape)

		stored, err := consultationService.GetState(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, models.ConsultationCompleted, stored.Status)
	})

	t.Run("Analyzing While Model Runs", func(t *testing.T) {
		consultationService, mockAnalyzer, _, sessionID := setupConsultationServiceTest(t)
		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").Run(func(args mock.Arguments) {
			state, err := consultationService.GetState(ctx, sessionID)
			require.NoError(t, err)
			assert.Equal(t, models.ConsultationAnalyzing, state.Status)
		}).Return(sampleAnalysis, nil).Once()

		_, err := consultationService.Analyze(ctx, sessionID, pngImage)

		require.NoError(t, err)
	})

	t.Run("Model Failure", func(t *testing.T) {
		consultationService, mockAnalyzer, _, sessionID := setupConsultationServiceTest(t)
		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").
			Return(nil, errors.Join(gemini.ErrAnalysisFailed, errors.New("malformed json"))).Once()

		state, err := consultationService.Analyze(ctx, sessionID, pngImage)

		assert.Nil(t, state)
		appErr := requireAppError(t, err, appErrors.ErrCodeAnalysisFailed)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
		assert.Equal(t, appErrors.AnalysisFailedMessage, appErr.Message)

		stored, _ := consultationService.GetState(ctx, sessionID)
		assert.Equal(t, models.ConsultationFailed, stored.Status)
		assert.Equal(t, appErrors.AnalysisFailedMessage, stored.Error)
		assert.Nil(t, stored.Result)
	})

	t.Run("Retry After Failure", func(t *testing.T) {
		consultationService, mockAnalyzer, _, sessionID := setupConsultationServiceTest(t)
		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").Return(nil, gemini.ErrAnalysisFailed).Once()
		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").Return(sampleAnalysis, nil).Once()

		_, err := consultationService.Analyze(ctx, sessionID, pngImage)
		require.Error(t, err)

		state, err := consultationService.Analyze(ctx, sessionID, pngImage)

		require.NoError(t, err)
		assert.Equal(t, models.ConsultationCompleted, state.Status)
		assert.Empty(t, state.Error)
	})

	t.Run("Rejects Non Image Without Calling Model", func(t *testing.T) {
		consultationService, mockAnalyzer, _, sessionID := setupConsultationServiceTest(t)

		for _, payload := range [][]byte{nil, []byte("%PDF-1.7 not an image"), []byte("hello there")} {
			state, err := consultationService.Analyze(ctx, sessionID, payload)

			assert.Nil(t, state)
			appErr := requireAppError(t, err, appErrors.ErrCodeValidation)
			assert.Equal(t, service.MissingImageMessage, appErr.Message)
		}

		mockAnalyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything, mock.Anything)

		stored, _ := consultationService.GetState(ctx, sessionID)
		assert.Equal(t, models.ConsultationIdle, stored.Status)
	})

	t.Run("One Analysis At A Time", func(t *testing.T) {
		consultationService, _, repo, sessionID := setupConsultationServiceTest(t)
		_, err := repo.Update(ctx, sessionID, func(s *models.Session) error {
			s.Consultation.Status = models.ConsultationAnalyzing
			return nil
		})
		require.NoError(t, err)

		_, err = consultationService.Analyze(ctx, sessionID, pngImage)

		requireAppError(t, err, appErrors.ErrCodeTooManyRequests)
	})

	t.Run("Result Discarded When Session Ends", func(t *testing.T) {
		consultationService, mockAnalyzer, repo, sessionID := setupConsultationServiceTest(t)
		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").Run(func(args mock.Arguments) {
			require.NoError(t, repo.Delete(ctx, sessionID))
		}).Return(sampleAnalysis, nil).Once()

		state, err := consultationService.Analyze(ctx, sessionID, pngImage)

		assert.Nil(t, state)
		requireAppError(t, err, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Model Call Ignores Request Cancellation", func(t *testing.T) {
		consultationService, mockAnalyzer, _, sessionID := setupConsultationServiceTest(t)
		reqCtx, cancel := context.WithCancel(ctx)

		mockAnalyzer.On("Analyze", mock.Anything, pngImage, "image/png").Run(func(args mock.Arguments) {
			cancel()
			callCtx := args.Get(0).(context.Context)
			assert.NoError(t, callCtx.Err())
		}).Return(sampleAnalysis, nil).Once()

		state, err := consultationService.Analyze(reqCtx, sessionID, pngImage)

		require.NoError(t, err)
		assert.Equal(t, models.ConsultationCompleted, state.Status)
	})
}
