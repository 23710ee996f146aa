package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/marina-studio/packtrack/internal/config"
	"github.com/marina-studio/packtrack/internal/database"
	"github.com/marina-studio/packtrack/internal/database/repository"
	"github.com/marina-studio/packtrack/internal/llm"
	"github.com/marina-studio/packtrack/internal/service"
	"github.com/marina-studio/packtrack/internal/store"
	"github.com/marina-studio/packtrack/internal/tui"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer cleanup()

	notifier := &service.NotifierService{
		Provider: llmProvider(cfg.LLM.Provider, cfg.ResolveAPIKey(), cfg.LLM.Model),
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	p := tea.NewProgram(tui.New(ctx, cfg, st, notifier, loc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Store.Driver)) {
	case "", "memory":
		return store.NewSeededMemoryStore(), func() {}, nil
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		if err := database.RunMigrations(cfg.Store.Path, "internal/database/migrations"); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		if err := database.SeedDemo(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		return repository.NewPackageRepo(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func llmProvider(name, apiKey, model string) llm.Provider {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		return llm.NewOpenAIProvider(apiKey, model)
	case "static":
		return llm.StaticProvider{}
	default:
		return llm.NewGeminiProvider(apiKey, model)
	}
}
