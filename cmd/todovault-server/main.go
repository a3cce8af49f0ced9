package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/yndnr/todovault-go/internal/core/domain"
	"github.com/yndnr/todovault-go/internal/core/service"
	"github.com/yndnr/todovault-go/internal/infra/buildinfo"
	"github.com/yndnr/todovault-go/internal/infra/confloader"
	"github.com/yndnr/todovault-go/internal/infra/shutdown"
	"github.com/yndnr/todovault-go/internal/infra/tlscert"
	"github.com/yndnr/todovault-go/internal/server/config"
	"github.com/yndnr/todovault-go/internal/server/httpserver"
	"github.com/yndnr/todovault-go/internal/storage/memory"
	"github.com/yndnr/todovault-go/internal/telemetry/logger"
	"github.com/yndnr/todovault-go/internal/telemetry/metric"
	"github.com/yndnr/todovault-go/pkg/token"
	"github.com/yndnr/todovault-go/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("todovault-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting todovault-server",
		"version", buildinfo.Version,
		"config", *configFile)

	if cfg.Security.Secret == config.DefaultSecret {
		log.Warn("using the built-in development signing secret; set security.secret before exposing this server")
	}

	// Stores
	users := memory.NewUserStore()
	users.Seed(seedUsers(cfg))

	todos := memory.NewTodoStore()
	if cfg.Storage.SeedDemo {
		todos.Seed(demoTodos())
		log.Info("seeded demo todos", "count", todos.Count())
	}

	// Services
	signer := token.NewSigner([]byte(cfg.Security.Secret), cfg.Security.TokenTTL)
	authSvc := service.NewAuthService(users, signer, &service.AuthServiceConfig{
		LoginRateLimit: cfg.Security.LoginRateLimit,
	})
	todoSvc := service.NewTodoService(todos)

	// Metrics
	var metrics *metric.Registry
	if cfg.Metrics.Enabled {
		metrics = metric.NewRegistry()
		metrics.MustRegister(metric.NewStoreCollector(todos))
	}

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		AuthService:        authSvc,
		TodoService:        todoSvc,
		Metrics:            metrics,
		Static:             web.Handler(),
		Logger:             log,
		CORSAllowedOrigins: cfg.Server.HTTP.CORSOrigins,
		GlobalRateLimit:    cfg.Server.HTTP.GlobalRateLimit,
		EnableAudit:        true,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	var certReloader *tlscert.Reloader
	if cfg.Server.HTTP.TLSCertFile != "" && cfg.Server.HTTP.TLSKeyFile != "" {
		certReloader, err = tlscert.NewReloader(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("load TLS keypair: %w", err)
		}
		certReloader.StartAsync()
	}

	shutdownHandler := shutdown.NewHandler(30 * time.Second)
	if certReloader != nil {
		shutdownHandler.OnShutdown(func(context.Context) error {
			certReloader.Stop()
			return nil
		})
	}
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Reload the log level when the config file changes.
	if *configFile != "" {
		watcher, err := startConfigWatcher(*configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)

		var err error
		if certReloader != nil {
			err = httpServer.ListenAndServeTLS(certReloader.TLSConfig())
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			shutdownHandler.Trigger()
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// startConfigWatcher reloads the log level when the config file is
// rewritten. Other settings require a restart.
func startConfigWatcher(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher.OnChange(func(string) {
		cfg, err := loadConfig(configFile)
		if err != nil {
			log.Warn("config reload failed, keeping current settings", "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level updated", "level", cfg.Log.Level)
		}
	})

	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.StartAsync()
	return watcher, nil
}

// seedUsers converts the configured credential table to domain users.
func seedUsers(cfg *config.ServerConfig) []*domain.User {
	users := make([]*domain.User, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		users = append(users, &domain.User{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
		})
	}
	return users
}

// demoTodos returns the starter list loaded when storage.seed_demo is
// on, split between the two demo accounts.
func demoTodos() []*domain.Todo {
	return []*domain.Todo{
		{ID: 1, Text: "Learn Go", Completed: false, OwnerID: 1},
		{ID: 2, Text: "Build a web app", Completed: false, OwnerID: 1},
		{ID: 3, Text: "Buy groceries", Completed: true, OwnerID: 2},
		{ID: 4, Text: "Walk the dog", Completed: false, OwnerID: 2},
	}
}
