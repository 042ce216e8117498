package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/alert"
	"github.com/Donchitos/Budgetzz-sub000/internal/config"
	"github.com/Donchitos/Budgetzz-sub000/internal/delivery"
	"github.com/Donchitos/Budgetzz-sub000/internal/scheduler"
	"github.com/Donchitos/Budgetzz-sub000/internal/store"
	"github.com/Donchitos/Budgetzz-sub000/internal/telegram"
)

type App struct {
	cfg        config.Config
	log        *zap.Logger
	bot        *tgbotapi.BotAPI // nil when BOT_TOKEN is empty
	httpSrv    *http.Server
	repo       store.Repo
	sched      *scheduler.Scheduler
	dispatcher *delivery.Dispatcher
	router     *telegram.Router
}

// New opens the database and wires the evaluation and delivery pipeline:
// engine -> notification insert -> create hook -> dispatcher -> router.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	repo, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log.Info("sqlite ready", zap.String("path", cfg.DBPath))

	a := &App{cfg: cfg, log: log, repo: repo}

	if cfg.BotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("telegram bot: %w", err)
		}
		bot.Debug = false
		a.bot = bot
		a.router = telegram.NewRouter(bot, log.Named("telegram"))
	} else {
		log.Warn("BOT_TOKEN is empty, push delivery disabled")
	}

	email, err := delivery.NewEmailSender(delivery.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log.Named("email"))
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	push := telegram.NewPushSender(a.bot, log.Named("push"))

	router := delivery.NewRouter(repo, log.Named("delivery"), email, push)
	a.dispatcher = delivery.NewDispatcher(ctx, router, log.Named("delivery"))
	repo.OnNotificationCreated(a.dispatcher.Notify)

	engine := alert.NewEngine(repo, alert.NewWriter(repo), log.Named("alert"))
	a.sched = scheduler.New(engine, log.Named("scheduler"), cfg.EvalInterval, cfg.RunOnStart)

	a.httpSrv = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      a.routes(),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}
	return a, nil
}

// Seed imports a JSON seed document into the database.
func (a *App) Seed(ctx context.Context, r io.Reader) error {
	if err := store.LoadSeed(ctx, a.repo, r); err != nil {
		return err
	}
	a.log.Info("seed loaded")
	return nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting alertd",
		zap.String("http", a.cfg.HTTPAddr),
		zap.Bool("push", a.bot != nil),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	var wg sync.WaitGroup
	if a.bot != nil {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		updCh := a.bot.GetUpdatesChan(u)
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.router.Run(ctx, updCh)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.sched.Run(ctx)
	}()

	<-ctx.Done()
	a.log.Info("shutdown signal received")

	// Create a short-lived shutdown context and cancel it immediately after use.
	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err := a.httpSrv.Shutdown(shCtx)
	cancel()
	if err != nil {
		a.log.Warn("http server shutdown error", zap.Error(err))
	}

	if a.bot != nil {
		a.bot.StopReceivingUpdates()
	}
	wg.Wait()
	return a.Close()
}

// Close finishes a running evaluation, refuses new ones, waits for in-flight
// deliveries and closes the database.
func (a *App) Close() error {
	a.sched.Stop()
	a.dispatcher.Wait()
	return a.repo.Close()
}
