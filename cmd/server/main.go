package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/jdcastellanos/granja/internal/config"
	"github.com/jdcastellanos/granja/internal/repository/mongodb"
	"github.com/jdcastellanos/granja/internal/scheduler"
	"github.com/jdcastellanos/granja/internal/server/handlers"
	"github.com/jdcastellanos/granja/internal/server/middleware"
	"github.com/jdcastellanos/granja/internal/server/router"
	authsvc "github.com/jdcastellanos/granja/internal/service/auth"
	farmsvc "github.com/jdcastellanos/granja/internal/service/farm"
	ledgersvc "github.com/jdcastellanos/granja/internal/service/ledger"
	recordsvc "github.com/jdcastellanos/granja/internal/service/records"
	reportingsvc "github.com/jdcastellanos/granja/internal/service/reporting"
	usersvc "github.com/jdcastellanos/granja/internal/service/users"
	"github.com/jdcastellanos/granja/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := mongodb.NewStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	authSvc := authsvc.NewService(store.Users(), cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Hour, baseLogger.Named("svc.auth"))
	recordSvc := recordsvc.NewService(store.Records(), store.Movements(), store.Alerts(), baseLogger.Named("svc.records"))
	ledgerSvc := ledgersvc.NewService(store.Movements(), baseLogger.Named("svc.ledger"))
	reportingSvc := reportingsvc.NewService(store.Records(), store.Alerts(), baseLogger.Named("svc.reporting"))
	farmSvc := farmsvc.NewService(store.FarmConfig(), baseLogger.Named("svc.farm"))
	userSvc := usersvc.NewService(store.Users(), store.Records(), baseLogger.Named("svc.users"))

	authMW := middleware.NewAuth(authSvc, baseLogger.Named("middleware.auth"))

	engine := router.New(router.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc, baseLogger.Named("handlers.auth")),
		Records: handlers.NewRecordHandler(recordSvc, baseLogger.Named("handlers.records")),
		Ledger:  handlers.NewLedgerHandler(ledgerSvc, baseLogger.Named("handlers.ledger")),
		Reports: handlers.NewReportHandler(reportingSvc, baseLogger.Named("handlers.reports")),
		Config:  handlers.NewConfigHandler(farmSvc, baseLogger.Named("handlers.config")),
		Users:   handlers.NewUserHandler(userSvc, baseLogger.Named("handlers.users")),
	}, authMW, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Summary, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
