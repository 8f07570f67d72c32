package service

import (
	"context"

	"github.com/nahidasmakeover/boutique/internal/models"
)

var studioMenu = []models.StudioService{
	{
		Title:       "Bridal Artistry",
		Description: "Bespoke bridal makeup designed to make you radiantly timeless on your special day. Includes trial consultation.",
		Price:       "from $350",
	},
	{
		Title:       "Red Carpet Glam",
		Description: "High-impact, long-wear styling for events, photoshoots, and galas. Camera-ready perfection.",
		Price:       "$150",
	},
	{
		Title:       "Editorial & Creative",
		Description: "Avant-garde makeup artistry for fashion editorials, brand campaigns, and creative projects.",
		Price:       "Custom Quote",
	},
	{
		Title:       "Masterclass Workshop",
		Description: "Learn professional techniques in a private 1-on-1 session or small group setting. Tools provided.",
		Price:       "$200 / session",
	},
}

type StudioService interface {
	ListServices(ctx context.Context) *models.ServicesMenu
}

type studioService struct {
	menu []models.StudioService
}

func NewStudioService() StudioService {
	return &studioService{menu: studioMenu}
}

func (s *studioService) ListServices(ctx context.Context) *models.ServicesMenu {
	services := make([]models.StudioService, len(s.menu))
	copy(services, s.menu)

	return &models.ServicesMenu{Services: services}
}
