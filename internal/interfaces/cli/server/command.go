package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"mentorhub/internal/infrastructure/config"
	"mentorhub/internal/infrastructure/database"
	"mentorhub/internal/infrastructure/migration"
	httpRouter "mentorhub/internal/interfaces/http"
	"mentorhub/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the MentorHub HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AllModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	} else {
		reportMigrationStatus(log)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// Session dedup degrades gracefully without Redis; warn, don't die.
		log.Warnw("redis unreachable, payment session dedup disabled", "error", err)
	}
	defer redisClient.Close()

	router, err := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	return router.Run()
}

func reportMigrationStatus(log logger.Interface) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		log.Warnw("failed to resolve migration scripts path", "error", err)
		return
	}

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if s, ok := strategy.(*migration.GolangMigrateStrategy); ok {
		version, dirty, err := s.GetVersion(database.Get())
		if err != nil {
			log.Warnw("failed to check migration status", "error", err)
			return
		}
		log.Infow("current migration version", "version", version, "dirty", dirty)
	}
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
