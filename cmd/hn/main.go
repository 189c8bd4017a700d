package main

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/glabrego/hackernews-cli/internal/app"
	"github.com/glabrego/hackernews-cli/internal/cache"
	"github.com/glabrego/hackernews-cli/internal/config"
	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/logging"
	"github.com/glabrego/hackernews-cli/internal/nav"
	"github.com/glabrego/hackernews-cli/internal/storage"
	"github.com/glabrego/hackernews-cli/internal/transport"
	"github.com/glabrego/hackernews-cli/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("log setup error: %v", err)
	}
	defer logFile.Close()

	repo, err := storage.NewRepository()
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}

	burst := int(cfg.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	httpClient := transport.NewHTTPClient(transport.NewConnector(nil, nil), cfg.RequestTimeout)
	client := hn.NewClient(cfg.APIBaseURL, httpClient, limiter)
	service := app.NewService(client, repo)

	logger.Info("starting",
		"api", cfg.APIBaseURL,
		"page_size", cfg.PageSize,
		"requests_per_second", cfg.RequestsPerSecond,
	)

	model := tui.NewModel(service, cache.New(), nav.New(), tui.Options{
		PageSize:    cfg.PageSize,
		Timeout:     cfg.RequestTimeout,
		DownloadDir: cfg.DownloadDir,
		WebBaseURL:  cfg.WebBaseURL,
		StatusTTL:   6 * time.Second,
		Logger:      logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		log.Fatalf("tui error: %v", err)
	}
	logger.Info("bye")
}
