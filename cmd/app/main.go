package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduling/cmd"
	httpadapter "scheduling/internal/adapters/in/http"
	"scheduling/internal/adapters/out/postgres"
	"scheduling/internal/adapters/out/rabbitmq"
	"scheduling/internal/core/ports"
	"scheduling/internal/pkg/logger"
	"scheduling/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	serviceName    = "Route Scheduling System"
	serviceVersion = "1.0.0"

	shutdownTimeout = 10 * time.Second
)

func main() {
	configs := cmd.LoadConfig()

	zapLogger, err := logger.New(configs.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, zapLogger); err != nil {
		zapLogger.Fatal("service stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, configs cmd.Config, zapLogger *zap.Logger) error {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := postgres.Migrate(ctx, gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	publisher, closePublisher, err := newPublisher(configs, zapLogger)
	if err != nil {
		return err
	}
	defer closePublisher()

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)
	app := cmd.NewCompositionRoot(configs, gormDB, publisher, m, zapLogger)

	jobManager := app.JobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpadapter.NewRouter(ctx, app.Server(httpadapter.Info{
		Name:        serviceName,
		Version:     serviceVersion,
		Environment: configs.AppEnv,
	}), httpadapter.RouterConfig{CORSOrigins: configs.CORSOrigins})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}
	e.Logger.SetLevel(log.INFO)

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("http server listening", zap.String("port", configs.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func newPublisher(configs cmd.Config, zapLogger *zap.Logger) (ports.EventPublisher, func(), error) {
	if configs.AMQPURL == "" {
		zapLogger.Info("AMQP_URL is empty, schedule events will not be published")
		return rabbitmq.NopPublisher{}, func() {}, nil
	}

	publisher, err := rabbitmq.NewPublisher(configs.AMQPURL, configs.AMQPExchange, zapLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to broker: %w", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			zapLogger.Warn("failed to close publisher", zap.Error(err))
		}
	}, nil
}
