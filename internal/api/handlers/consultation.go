package handlers

import (
	stdErrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/errors"
	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/internal/utils/response"
)

const imageField = "image"

type ConsultationHandler struct {
	consultationService service.ConsultationService
	maxUploadBytes      int64
}

func NewConsultationHandler(consultationService service.ConsultationService, maxUploadBytes int64) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService, maxUploadBytes: maxUploadBytes}
}

// GetConsultation godoc
//	@Summary	Latest consultation state
//	@Tags		Consultation
//	@Produce	json
//	@Success	200	{object}	models.ConsultationState
//	@Router		/consultation [get]
func (h *ConsultationHandler) GetConsultation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		state, err := h.consultationService.GetState(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load consultation state", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

// Analyze godoc
//	@Summary		Analyse a portrait
//	@Description	Sends one image to the beauty model and returns face shape, skin tone, eye color, advice and product picks.
//	@Tags			Consultation
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Portrait"
//	@Success		200		{object}	models.ConsultationState
//	@Failure		400		{object}	response.ErrorResponse	"Missing or non-image upload"
//	@Failure		429		{object}	response.ErrorResponse	"Analysis already running"
//	@Failure		502		{object}	response.ErrorResponse	"Analysis failed"
//	@Router			/consultation [post]
func (h *ConsultationHandler) Analyze() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := requireSession(w, r)
		if !ok {
			return
		}

		image, err := h.readImage(w, r)
		if err != nil {
			logger.Warn("Invalid consultation upload", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		state, err := h.consultationService.Analyze(r.Context(), sessionID, image)
		if err != nil {
			logger.Warn("Consultation did not complete", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

func (h *ConsultationHandler) readImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if stdErrors.As(err, &tooLarge) {
			return nil, errors.ValidationError(fmt.Sprintf("Image must be at most %d bytes", h.maxUploadBytes)).WithError(err)
		}
		return nil, errors.ValidationError(service.MissingImageMessage).WithError(err)
	}

	file, header, err := r.FormFile(imageField)
	if err != nil {
		return nil, errors.ValidationError(service.MissingImageMessage).WithError(err)
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		return nil, errors.ValidationError(fmt.Sprintf("Image must be at most %d bytes", h.maxUploadBytes))
	}

	image, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.BadRequestError("Failed to read image").WithError(err)
	}

	return image, nil
}
