package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"popular-videos/domain/repository"
	youtubeclient "popular-videos/infrastructure/clients/youtube"
	"popular-videos/infrastructure/configuration"
	"popular-videos/infrastructure/logger"
	httpHandler "popular-videos/interfaces/http"
	"popular-videos/interfaces/web"
	"popular-videos/server"
	"popular-videos/usecase"

	"github.com/gin-gonic/gin"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg, err := configuration.LoadConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to load configuration")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Invalid configuration")
		os.Exit(1)
	}
	logger.Configure(cfg.LoggerOptions())

	popularUseCase := initiatePopularUseCase(ctx, cfg)
	presenter := web.NewPresenter(popularUseCase)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.InitiateRouter(
		httpHandler.NewPopularHandler(popularUseCase),
		httpHandler.NewPageHandler(presenter),
		httpHandler.NewHealthHandler(),
		cfg.App.AllowOrigins,
	)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	app := cfg.App
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.GetLogger().WithFields(map[string]interface{}{"port": app.Port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		var err error
		if app.TLSEnabled {
			logger.GetLogger().WithFields(map[string]interface{}{"cert": app.TLSCertFile, "key": app.TLSKeyFile}).Info("Serving HTTPS")
			err = httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case sig := <-interrupt:
		logger.GetLogger().WithField("signal", sig.String()).Info("Application shutdown requested")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Graceful shutdown did not complete")
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
	logger.GetLogger().Info("Application stopped")
}

// initiatePopularUseCase wires the YouTube client when an API key is configured.
// Without one the use case answers every request with a configuration error.
func initiatePopularUseCase(ctx context.Context, cfg *configuration.Config) usecase.IPopularVideosUseCase {
	yt := cfg.YouTube
	var youtubeRepo repository.IYouTube

	if yt.HasAPIKey() {
		client, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
			APIKey:  yt.APIKey,
			BaseURL: yt.BaseURL,
		})
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed to initialize YouTube client - popular videos will be unavailable")
		} else {
			youtubeRepo = client
		}
	} else {
		logger.GetLogger().Warn("YOUTUBE_API_KEY not configured - popular videos will report a configuration error")
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"hasAPIKey":        yt.HasAPIKey(),
		"clientReady":      youtubeRepo != nil,
		"windowDays":       yt.WindowDays,
		"searchMaxResults": yt.SearchMaxResults,
		"topN":             yt.TopN,
	}).Info("YouTube initialization summary")

	window := time.Duration(yt.WindowDays) * 24 * time.Hour
	return usecase.NewPopularVideosUseCase(youtubeRepo, window, yt.SearchMaxResults, yt.TopN)
}
