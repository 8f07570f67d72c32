package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nahidasmakeover/boutique/internal/api/handlers"
	"github.com/nahidasmakeover/boutique/internal/api/middleware"
	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/internal/health"
	"github.com/nahidasmakeover/boutique/internal/metrics"
	repository "github.com/nahidasmakeover/boutique/internal/repositories"
	service "github.com/nahidasmakeover/boutique/internal/services"
	"github.com/nahidasmakeover/boutique/internal/telemetry"
	"github.com/nahidasmakeover/boutique/pkg/gemini"
	"github.com/nahidasmakeover/boutique/pkg/sendgrid"
	"github.com/nahidasmakeover/boutique/pkg/whatsapp"
)

const version = "1.0.0"

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", slog.String("reason", err.Error()))
	}

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Storage setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the overlay store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing storage connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Storage connection closed")
		}
	}()

	analyzer, err := gemini.NewClient(ctx, cfg.Gemini, cfg.Breaker)
	if err != nil {
		slog.Error("❌ Error creating the Gemini client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var mailer sendgrid.EmailService
	if cfg.SendGrid.Enabled() {
		mailer = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Info("SendGrid not configured, contact messages go to WhatsApp only")
	}

	links := whatsapp.NewLinkBuilder(cfg.Handoff.WhatsAppURL, cfg.Handoff.Currency)

	catalogService := service.NewCatalogService(ctx, repository.DefaultCatalog(), repos.Overlay)
	sessionService := service.NewSessionService(repos.Sessions, cfg.Security)
	studioService := service.NewStudioService()
	cartService := service.NewCartService(repos.Sessions, catalogService)
	wishlistService := service.NewWishlistService(repos.Sessions, catalogService)
	navigationService := service.NewNavigationService(repos.Sessions, catalogService, studioService)
	consultationService := service.NewConsultationService(repos.Sessions, analyzer)
	handoffService := service.NewHandoffService(repos.Sessions, catalogService, links, mailer, cfg.SendGrid.StudioEmail)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	navigationHandler := handlers.NewNavigationHandler(navigationService)
	consultationHandler := handlers.NewConsultationHandler(consultationService, cfg.Security.MaxUploadBytes)
	handoffHandler := handlers.NewHandoffHandler(handoffService)
	studioHandler := handlers.NewStudioHandler(studioService)
	sessionMiddleware := middleware.NewSessionMiddleware(sessionService, cfg.Security)

	healthHandler, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/session", sessionHandler.GetSession())
	routerMux.HandleFunc("POST /api/v1/session/intro", sessionHandler.MarkIntroSeen())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("POST /api/v1/products/{id}/reviews", catalogHandler.AddReview())
	routerMux.HandleFunc("POST /api/v1/products/{id}/buy", handoffHandler.BuyNow())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{index}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/cart/checkout", handoffHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist())
	routerMux.HandleFunc("POST /api/v1/wishlist/toggle", wishlistHandler.Toggle())
	routerMux.HandleFunc("GET /api/v1/wishlist/{id}", wishlistHandler.Contains())
	routerMux.HandleFunc("GET /api/v1/navigation", navigationHandler.GetNavigation())
	routerMux.HandleFunc("POST /api/v1/navigation", navigationHandler.Navigate())
	routerMux.HandleFunc("GET /api/v1/consultation", consultationHandler.GetConsultation())
	routerMux.HandleFunc("POST /api/v1/consultation", consultationHandler.Analyze())
	routerMux.HandleFunc("POST /api/v1/contact", handoffHandler.Contact())
	routerMux.HandleFunc("GET /api/v1/services", studioHandler.ListServices())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining, innermost first
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = sessionMiddleware.Attach(handler)
	handler = middleware.Logging(handler)
	handler = telemetry.Middleware(handler, "boutique")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	go sweepSessions(sweepCtx, sessionService, cfg.Security.SweepInterval)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr), slog.String("env", cfg.Env), slog.String("version", version))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	stopSweep()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}

// sweepSessions periodically drops idle sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, sessions service.SessionService, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.Sweep(ctx); removed > 0 {
				slog.Info("Idle sessions swept", slog.Int("removed", removed))
			}
		}
	}
}
