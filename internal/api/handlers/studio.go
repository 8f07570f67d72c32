package handlers

import (
	"net/http"

	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/internal/utils/response"
)

type StudioHandler struct {
	studioService service.StudioService
}

func NewStudioHandler(studioService service.StudioService) *StudioHandler {
	return &StudioHandler{studioService: studioService}
}

// ListServices godoc
//	@Summary	Bookable studio services
//	@Tags		Services
//	@Produce	json
//	@Success	200	{object}	models.ServicesMenu
//	@Router		/services [get]
func (h *StudioHandler) ListServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.studioService.ListServices(r.Context()))
	}
}
