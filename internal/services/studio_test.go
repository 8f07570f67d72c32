package service_test

import (
	"context"
	"testing"

	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudioService_ListServices(t *testing.T) {
	studioService := service.NewStudioService()

	menu := studioService.ListServices(context.Background())

	require.Len(t, menu.Services, 4)
	assert.Equal(t, "Bridal Artistry", menu.Services[0].Title)
	assert.Equal(t, "from $350", menu.Services[0].Price)
	assert.Equal(t, "Custom Quote", menu.Services[2].Price)

	menu.Services[0].Title = "changed"
	assert.Equal(t, "Bridal Artistry", studioService.ListServices(context.Background()).Services[0].Title)
}
