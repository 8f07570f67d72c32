package service

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/errors"
	"github.com/nahidasmakeover/boutique/internal/metrics"
	"github.com/nahidasmakeover/boutique/internal/models"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
)

const FeaturedCount = 3

type CatalogService interface {
	ListProducts(ctx context.Context) []models.Product
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SearchProducts(ctx context.Context, term string) []models.Product
	FeaturedProducts(ctx context.Context, n int) []models.Product
	AddReview(ctx context.Context, productID string, req *models.CreateReviewRequest) (*models.Review, error)
}

type catalogService struct {
	mu       sync.RWMutex
	saveMu   sync.Mutex
	products []models.Product
	index    map[string]int
	repo     repository.OverlayRepository
	policy   *bluemonday.Policy
	now      func() time.Time
}

// NewCatalogService merges the persisted review overlay onto products. A
// missing or unreadable overlay leaves every product without reviews.
func NewCatalogService(ctx context.Context, products []models.Product, repo repository.OverlayRepository) CatalogService {

	logger := middleware.LoggerFromContext(ctx)

	overlay, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("Review overlay unreadable, starting without persisted reviews", slog.String("error", err.Error()))
		overlay = models.ReviewOverlay{}
	}

	s := &catalogService{
		products: make([]models.Product, len(products)),
		index:    make(map[string]int, len(products)),
		repo:     repo,
		policy:   bluemonday.StrictPolicy(),
		now:      time.Now,
	}

	merged := 0

	for i, p := range products {
		p = p.Clone()

		if reviews, ok := overlay[p.ID]; ok && len(reviews) > 0 {
			p.Reviews = append([]models.Review(nil), reviews...)
			merged++
		} else {
			p.Reviews = []models.Review{}
		}

		s.products[i] = p
		s.index[p.ID] = i
	}

	logger.Info("Catalog loaded", slog.Int("products", len(s.products)), slog.Int("productsWithReviews", merged))

	return s
}

func (s *catalogService) ListProducts(ctx context.Context) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}

	return out
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	product := s.products[i].Clone()

	return &product, nil
}

// SearchProducts keeps products whose name or category contains term,
// ignoring case. An empty term matches everything.
func (s *catalogService) SearchProducts(ctx context.Context, term string) []models.Product {
	needle := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}

	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(string(p.Category)), needle) {
			out = append(out, p.Clone())
		}
	}

	return out
}

func (s *catalogService) FeaturedProducts(ctx context.Context, n int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n = min(max(n, 0), len(s.products))

	out := make([]models.Product, n)
	for i := range n {
		out[i] = s.products[i].Clone()
	}

	return out
}

func (s *catalogService) AddReview(ctx context.Context, productID string, req *models.CreateReviewRequest) (*models.Review, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("productId", productID))

	userName := s.plainText(req.UserName)
	comment := s.plainText(req.Comment)

	if userName == "" {
		return nil, errors.AddValidationError("userName", "must not be empty")
	}

	if comment == "" {
		return nil, errors.AddValidationError("comment", "must not be empty")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.AddValidationError("rating", "must be between 1 and 5")
	}

	// snapshots are written in the order reviews are accepted
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()

	i, ok := s.index[productID]
	if !ok {
		s.mu.Unlock()
		return nil, errors.NotFoundError("Product not found")
	}

	review := models.Review{
		ID:       uuid.NewString(),
		UserName: userName,
		Rating:   req.Rating,
		Comment:  comment,
		Date:     s.now().Format(models.ReviewDateLayout),
	}

	product := &s.products[i]
	product.Reviews = append([]models.Review{review}, product.Reviews...)

	snapshot := s.snapshotLocked()

	s.mu.Unlock()

	metrics.RecordReview()
	logger.Info("Review added", slog.String("reviewId", review.ID), slog.Int("rating", review.Rating))

	if err := s.repo.Save(context.WithoutCancel(ctx), snapshot); err != nil {
		metrics.RecordOverlayPersistFailure()
		logger.Error("Failed to persist review overlay", slog.String("error", err.Error()))
	}

	return &review, nil
}

// snapshotLocked copies every non-empty review list. Caller holds s.mu.
func (s *catalogService) snapshotLocked() models.ReviewOverlay {
	overlay := models.ReviewOverlay{}

	for _, p := range s.products {
		if len(p.Reviews) == 0 {
			continue
		}

		overlay[p.ID] = append([]models.Review(nil), p.Reviews...)
	}

	return overlay
}

// plainText strips markup and returns trimmed text.
func (s *catalogService) plainText(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}
