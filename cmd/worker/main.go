package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	payusecases "mentorhub/internal/application/payment/usecases"
	resusecases "mentorhub/internal/application/resource/usecases"
	subusecases "mentorhub/internal/application/subscription/usecases"
	"mentorhub/internal/infrastructure/config"
	"mentorhub/internal/infrastructure/database"
	"mentorhub/internal/infrastructure/repository"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
)

// The worker runs the two maintenance sweeps on a fixed interval: publishing
// scheduled posts whose time has come, and re-driving ledger activation for
// paid records whose original activation write failed.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting maintenance worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	clock := biztime.UTCClock{}
	recordRepo := repository.NewSubscriptionRecordRepository(database.Get())
	postRepo := repository.NewPostRepository(database.Get())

	activateUC := subusecases.NewActivateRecordUseCase(recordRepo, cfg.Subscription.DurationDays, clock, log)
	retryUC := payusecases.NewRetryActivationUseCase(recordRepo, activateUC, log)
	publishUC := resusecases.NewPublishScheduledUseCase(postRepo, clock, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	runSweeps(ctx, publishUC, retryUC, log)

	log.Infow("maintenance worker started, sweeping every minute")

	for {
		select {
		case <-ticker.C:
			runSweeps(ctx, publishUC, retryUC, log)

		case sig := <-sigChan:
			log.Infow("received signal, shutting down", "signal", sig)

			finalCtx, finalCancel := context.WithTimeout(context.Background(), 30*time.Second)
			runSweeps(finalCtx, publishUC, retryUC, log)
			finalCancel()

			log.Infow("maintenance worker stopped")
			return
		}
	}
}

func runSweeps(
	ctx context.Context,
	publishUC *resusecases.PublishScheduledUseCase,
	retryUC *payusecases.RetryActivationUseCase,
	log logger.Interface,
) {
	if result, err := publishUC.Execute(ctx); err != nil {
		log.Errorw("scheduled publish sweep failed", "error", err)
	} else if result.Due > 0 {
		log.Infow("scheduled publish sweep completed",
			"due", result.Due,
			"published", result.Published,
			"failed", result.Failed,
		)
	}

	if result, err := retryUC.Execute(ctx); err != nil {
		log.Errorw("activation retry sweep failed", "error", err)
	} else if result.Scanned > 0 {
		log.Infow("activation retry sweep completed",
			"scanned", result.Scanned,
			"activated", result.Activated,
			"failed", result.Failed,
		)
	}
}
