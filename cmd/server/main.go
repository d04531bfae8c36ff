package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"github.com/yukikurage/realty-dashboard-api/internal/config"
	"github.com/yukikurage/realty-dashboard-api/internal/constants"
	"github.com/yukikurage/realty-dashboard-api/internal/database"
	"github.com/yukikurage/realty-dashboard-api/internal/handlers"
	"github.com/yukikurage/realty-dashboard-api/internal/middleware"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
	"gorm.io/gorm"
)

func main() {
	root := &cli.Command{
		Name:  "realty-dashboard",
		Usage: "Real-estate back-office dashboard API",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			return runServer(ctx, cfg)
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "HTTP listen address", Sources: cli.EnvVars("SERVER_ADDR")},
			&cli.StringFlag{Name: "storage", Usage: "memory, sqlite, postgres or mysql", Sources: cli.EnvVars("STORAGE_DRIVER")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			if addr := cmd.String("addr"); addr != "" {
				cfg.ServerAddr = addr
			}
			if driver := cmd.String("storage"); driver != "" {
				cfg.StorageDriver = driver
			}
			return runServer(ctx, cfg)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the SQL schema",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "seed", Usage: "load the sample team, forms, activities and tasks into empty tables"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			if cfg.StorageDriver == config.DriverMemory {
				return fmt.Errorf("migrate needs a SQL storage driver, got %q", cfg.StorageDriver)
			}

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			if cmd.Bool("seed") {
				return seed(repository.NewGormStore(db))
			}
			return nil
		},
	}
}

func openStore(cfg *config.Config) (*repository.Store, error) {
	var (
		store *repository.Store
		db    *gorm.DB
		err   error
	)

	if cfg.StorageDriver == config.DriverMemory {
		store, err = repository.NewMemoryStore()
		if err != nil {
			return nil, err
		}
		log.Println("Using in-memory storage; data is lost on restart")
	} else {
		db, err = database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		store = repository.NewGormStore(db)
	}

	if cfg.SeedSampleData {
		if err := seed(store); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func seed(store *repository.Store) error {
	data, err := repository.DefaultSampleData(time.Now())
	if err != nil {
		return err
	}
	if err := store.Seed(data); err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}
	log.Println("Sample data loaded")
	return nil
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if cfg.UsesRedisSessions() {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // username (empty for default user)
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	// The widget lives in a third-party iframe, so the cookie must be sent cross-site.
	sameSite := http.SameSiteLaxMode
	if cfg.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: sameSite,
	})
	return store, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	sessionStore, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	var suggester services.TaskSuggester
	if cfg.OpenAIAPIKey != "" {
		suggester = services.NewAIService(cfg.OpenAIAPIKey)
	}

	widgetService := services.NewWidgetService(cfg.PlatformURLs)

	r := gin.Default()
	r.Use(middleware.FrameAncestors(cfg.FrameAncestors))
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))
	r.Use(middleware.WidgetContext(widgetService))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Dashboard: handlers.NewDashboardHandler(
			services.NewDashboardService(store.Forms, store.Users),
			services.NewTeamService(store.Users),
		),
		User:        handlers.NewUserHandler(services.NewUserService(store.Users)),
		Transaction: handlers.NewTransactionHandler(services.NewTransactionService(store.Transactions, store.Users)),
		Form:        handlers.NewFormHandler(services.NewFormService(store.Forms, store.Users)),
		Activity:    handlers.NewActivityHandler(services.NewActivityService(store.Activities, store.Users)),
		Task:        handlers.NewTaskHandler(services.NewTaskService(store.Tasks, store.Users, suggester)),
		Widget:      handlers.NewWidgetHandler(widgetService),
	})

	srv := &http.Server{Addr: cfg.ServerAddr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down server")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
