package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-co-op/gocron/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/config"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/eventlock"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/notify"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/settlement"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/clients"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	ext      *settlement.Service
	cron     gocron.Scheduler
	notifier notify.Notifier

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.notifier = buildNotifier(cfg)
	locker, err := buildLocker(ctx, cfg)
	if err != nil {
		zap.L().Error("event lock backend failed: ", zap.Error(err))
		return fmt.Errorf("can't build event lock: %w", err)
	}
	a.srv = service.New(a.repo, txManager, locker, a.notifier, cfg.JWTSecret)
	a.api = handlers.New(a.srv, cfg.WebhookToken, cfg.SchedulerToken)
	a.ext = settlement.New(cfg, a.repo.ChallengeRepo, a.repo.PickRepo, a.repo.TierRepo, txManager, a.notifier, clients.NewHTTPClient())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSettlement(ctx)

	if err = a.startScheduler(ctx); err != nil {
		zap.L().Error("scheduler failed: ", zap.Error(err))
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func buildLocker(ctx context.Context, cfg *config.Config) (eventlock.Locker, error) {
	if cfg.RedisAddr == "" {
		return eventlock.NewMemory(eventlock.DefaultTTL), nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return eventlock.NewRedis(rdb, eventlock.DefaultTTL), nil
}

func buildNotifier(cfg *config.Config) notify.Notifier {
	if cfg.NATSUrl == "" {
		return notify.Noop{}
	}
	n, err := notify.NewNATS(cfg.NATSUrl)
	if err != nil {
		zap.L().Warn("nats unavailable, transition events disabled", zap.Error(err))
		return notify.Noop{}
	}
	return n
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSettlement(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

// startScheduler runs the daily loss-limit rebase at 00:00 UTC. The same job
// stays reachable over POST /api/system/daily-reset for external cron setups.
func (a *Application) startScheduler(ctx context.Context) error {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return err
	}
	_, err = cron.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			if _, err := a.srv.SchedService.DailyReset(ctx); err != nil {
				zap.L().Error("daily reset job failed", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return err
	}
	cron.Start()
	a.cron = cron

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := a.cron.Shutdown(); err != nil {
			zap.L().Warn("scheduler shutdown", zap.Error(err))
		}
	}()
	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	a.notifier.Close()
	close(a.errCh)
	wg.Wait()

	return appErr
}
