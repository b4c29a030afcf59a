package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samuel-avson/retrofolio/internal/api"
	"github.com/samuel-avson/retrofolio/internal/app/assistant"
	"github.com/samuel-avson/retrofolio/internal/app/engagement"
	"github.com/samuel-avson/retrofolio/internal/app/interpreter"
	"github.com/samuel-avson/retrofolio/internal/domain"
	"github.com/samuel-avson/retrofolio/internal/health"
	"github.com/samuel-avson/retrofolio/internal/infra/catalog"
	_ "github.com/samuel-avson/retrofolio/internal/infra/metrics" // Register Prometheus metrics
	"github.com/samuel-avson/retrofolio/internal/infra/sqlite"
)

// Daemon is the core Retrofolio runtime. It wires together all
// services behind the HTTP API.
type Daemon struct {
	Config      Config
	DB          *sqlite.DB
	Catalog     domain.PortfolioData
	Engine      *engagement.Engine
	Interpreter *interpreter.Interpreter
	Assistant   *assistant.Assistant
	Health      *health.Checker
	Server      *api.Server
	cancel      context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = retrofolioHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	data, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	engine := engagement.New(db, len(data.Projects))
	interp := interpreter.New(data)

	// Assistant backend is optional: missing key means offline mode.
	var completer assistant.Completer
	if cfg.Assistant.Enabled {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			gc, err := assistant.NewGemini(context.Background(), key, cfg.Assistant.Model, data)
			if err != nil {
				log.Printf("[daemon] assistant disabled: %v", err)
			} else {
				completer = gc
			}
		} else {
			log.Printf("[daemon] GEMINI_API_KEY not set, assistant running in offline mode")
		}
	}

	checker := health.NewChecker(db, dataDir)
	asst := assistant.New(completer)

	srv := api.NewServer(engine, interp, asst, checker, cfg.Server.CORSOrigins)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:      cfg,
		DB:          db,
		Catalog:     data,
		Engine:      engine,
		Interpreter: interp,
		Assistant:   asst,
		Health:      checker,
		Server:      srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.Server.Host, d.Config.Server.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("Retrofolio serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}
	if d.Assistant.Enabled() {
		fmt.Printf("  Assistant: %s\n", d.Config.Assistant.Model)
	}

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown triggers a graceful stop.
func (d *Daemon) Shutdown() {
	if d.cancel != nil {
		d.cancel()
	}
}
